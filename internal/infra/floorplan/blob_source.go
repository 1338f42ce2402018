// Package floorplan loads floor-plan documents from blob storage.
package floorplan

import (
	"context"
	"fmt"
	"log/slog"

	"wayfinder/config"
	"wayfinder/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local directory buckets
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for the blob source, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobSource struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobSource opens the configured floor-plan bucket. The bucket URL can
// name a local directory (file://), GCS, S3, or anything else gocloud's
// registered drivers understand.
func NewBlobSource(params Params) (service.FloorPlanSource, error) {
	if params.Config.FloorPlans == nil || params.Config.FloorPlans.Source == "" {
		return nil, errors.New("floorPlans.source is not configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.FloorPlans.Source)
	if err != nil {
		return nil, errors.Wrapf(err, "open floor-plan bucket %s", params.Config.FloorPlans.Source)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &blobSource{bucket: bucket, logger: params.Logger}, nil
}

// PlanKey is the bucket key of a floor plan document.
func PlanKey(buildingID, floor string) string {
	return fmt.Sprintf("%s-%s.svg", buildingID, floor)
}

// FetchPlan reads the plan document for a building/floor. A missing key maps
// to service.ErrPlanNotFound so callers can distinguish absence from failure.
func (s *blobSource) FetchPlan(ctx context.Context, buildingID, floor string) ([]byte, error) {
	key := PlanKey(buildingID, floor)

	content, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrPlanNotFound
		}

		return nil, errors.Wrapf(err, "read floor plan %s", key)
	}

	s.logger.Debug("floor plan fetched",
		slog.String("key", key),
		slog.Int("bytes", len(content)),
	)

	return content, nil
}
