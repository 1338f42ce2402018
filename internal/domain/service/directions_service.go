// Package service defines the interfaces for infrastructure collaborators
// the use cases depend on.
package service

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// DirectionsService is the contract with the indoor directions backend.
//
// Direction lookup is a hard requirement and returns an error the caller can
// present. The remaining endpoints provide decoration data: they degrade to
// an empty result on any failure and never return an error, so a transient
// backend problem does not block the floor plan from being usable.
type DirectionsService interface {
	// GetIndoorDirections fetches a route between two rooms of a building.
	// Fails with domain errors distinguishing an unreachable backend from a
	// non-success HTTP response.
	GetIndoorDirections(ctx context.Context, backendBuildingID, origin, destination, originFloor, destinationFloor string) (*entity.IndoorRoute, error)

	// GetAvailableRooms lists the room identifiers of a building/floor,
	// sorted ascending. Empty on failure.
	GetAvailableRooms(ctx context.Context, backendBuildingID, floor string) []string

	// GetRoomPoints fetches the coordinates of every room on a floor.
	// Empty on failure or on a non-array payload.
	GetRoomPoints(ctx context.Context, backendBuildingID, floor string) []entity.RoomPoint

	// GetPointsOfInterest fetches the POI markers of a floor. Empty on failure.
	GetPointsOfInterest(ctx context.Context, backendBuildingID, floor string) []entity.PoiMarker

	// GetWaypoints fetches the corridor waypoints of a floor, used for
	// debugging overlays. Empty on failure.
	GetWaypoints(ctx context.Context, backendBuildingID, floor string) []entity.RoomPoint
}
