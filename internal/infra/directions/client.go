// Package directions implements the DirectionsService over the indoor
// directions HTTP backend.
package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	directionsPath = "/api/directions/indoor"
	roomsPath      = "/api/directions/indoor/rooms"
	roomPointsPath = "/api/directions/indoor/room-points"
	poisPath       = "/api/directions/indoor/pois"
	waypointsPath  = "/api/directions/indoor/waypoints"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the directions backend client. The backend base URL is
// a hard configuration requirement: without it no network call can succeed.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.DirectionsService, error) {
	if cfg.Directions == nil || strings.TrimSpace(cfg.Directions.BaseURL) == "" {
		return nil, domainerrors.ErrConfigurationMissing
	}

	return &client{
		baseURL: strings.TrimRight(cfg.Directions.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Directions.Timeout,
		},
		logger: logger,
	}, nil
}

// GetIndoorDirections fetches a route between two rooms. Unlike the
// decoration endpoints below, failures propagate so the caller can present
// an error state.
func (c *client) GetIndoorDirections(ctx context.Context, backendBuildingID, origin, destination, originFloor, destinationFloor string) (*entity.IndoorRoute, error) {
	query := url.Values{}
	query.Set("buildingId", backendBuildingID)
	query.Set("origin", origin)
	query.Set("destination", destination)
	if originFloor != "" {
		query.Set("originFloor", originFloor)
	}
	if destinationFloor != "" {
		query.Set("destinationFloor", destinationFloor)
	}

	body, err := c.get(ctx, directionsPath, query)
	if err != nil {
		return nil, err
	}

	var route entity.IndoorRoute
	if err := json.Unmarshal(body, &route); err != nil {
		return nil, domainerrors.ErrBackendFailure.WithDetails(fmt.Sprintf("malformed directions payload: %v", err))
	}

	return &route, nil
}

// GetAvailableRooms lists room ids sorted ascending; empty on any failure.
func (c *client) GetAvailableRooms(ctx context.Context, backendBuildingID, floor string) []string {
	var rooms []string
	if !c.getDecoration(ctx, roomsPath, backendBuildingID, floor, &rooms) || rooms == nil {
		return []string{}
	}
	sort.Strings(rooms)

	return rooms
}

// GetRoomPoints fetches room coordinates; empty on failure or non-array payload.
func (c *client) GetRoomPoints(ctx context.Context, backendBuildingID, floor string) []entity.RoomPoint {
	var points []entity.RoomPoint
	if !c.getDecoration(ctx, roomPointsPath, backendBuildingID, floor, &points) || points == nil {
		return []entity.RoomPoint{}
	}

	return points
}

// GetPointsOfInterest fetches POI markers; empty on failure.
func (c *client) GetPointsOfInterest(ctx context.Context, backendBuildingID, floor string) []entity.PoiMarker {
	var pois []entity.PoiMarker
	if !c.getDecoration(ctx, poisPath, backendBuildingID, floor, &pois) || pois == nil {
		return []entity.PoiMarker{}
	}

	return pois
}

// GetWaypoints fetches corridor waypoints; empty on failure.
func (c *client) GetWaypoints(ctx context.Context, backendBuildingID, floor string) []entity.RoomPoint {
	var points []entity.RoomPoint
	if !c.getDecoration(ctx, waypointsPath, backendBuildingID, floor, &points) || points == nil {
		return []entity.RoomPoint{}
	}

	return points
}

// getDecoration fetches best-effort overlay data. Errors are logged and
// swallowed; the boolean reports whether out was populated.
func (c *client) getDecoration(ctx context.Context, path, backendBuildingID, floor string, out any) bool {
	query := url.Values{}
	query.Set("buildingId", backendBuildingID)
	if floor != "" {
		query.Set("floor", floor)
	}

	body, err := c.get(ctx, path, query)
	if err != nil {
		c.logger.Debug("decoration fetch failed",
			slog.String("path", path),
			slog.String("buildingId", backendBuildingID),
			slog.Any("error", err),
		)

		return false
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Debug("decoration payload not of expected shape",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// get performs one GET request and classifies failures: a transport error
// becomes ErrBackendUnreachable, a non-2xx response becomes
// ErrBackendFailure carrying the status and body text.
func (c *client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrBackendUnreachable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.ErrBackendFailure.WithDetails(
			fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		)
	}

	return body, nil
}
