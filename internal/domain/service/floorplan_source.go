package service

import (
	"context"

	"wayfinder/internal/errors"
)

// ErrPlanNotFound signals that no floor-plan document exists for the
// requested building/floor.
var ErrPlanNotFound = errors.New("floor plan not found")

// FloorPlanSource fetches floor-plan documents by building and floor.
type FloorPlanSource interface {
	// FetchPlan returns the floor-plan document content, or ErrPlanNotFound
	// when the building/floor has no stored plan.
	FetchPlan(ctx context.Context, buildingID, floor string) ([]byte, error)
}
