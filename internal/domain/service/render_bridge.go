package service

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// RenderBridge drives the embedded floor-plan rendering surface. Commands
// issued while the surface is still loading are coalesced to the most recent
// one and flushed once the surface signals readiness; delivery of overlay
// commands is best-effort.
type RenderBridge interface {
	// LoadFloorPlan loads the floor-plan document for a building/floor into
	// the surface and resets readiness. A missing plan leaves the surface in
	// a blank ready state and returns ErrPlanNotFound so the caller can
	// surface "floor plan unavailable".
	LoadFloorPlan(ctx context.Context, buildingID, floor string) error

	// DrawRoute draws the route polyline plus start/end markers. Idempotent:
	// the renderer removes any previous route overlay first.
	DrawRoute(points []entity.RoutePoint)

	// ClearRoute removes the route overlay. No-op when nothing is drawn.
	ClearRoute()

	// ShowRoomMarkers replaces the full room marker set.
	ShowRoomMarkers(points []entity.RoomPoint)
	HideRoomMarkers()

	// ShowPois replaces the full POI marker set.
	ShowPois(pois []entity.PoiMarker)
	HidePois()

	// SetTapHandlers registers the callbacks invoked when the renderer
	// reports a tap on a room or POI marker.
	SetTapHandlers(onRoomTap func(entity.RoomPoint), onPoiTap func(entity.PoiMarker))

	// HandleEvent processes one raw event envelope from the renderer.
	// Malformed or unrecognized payloads are silently ignored.
	HandleEvent(raw []byte)
}
