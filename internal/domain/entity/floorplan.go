// Package entity contains the core business objects of the application.
// Entities are independent of any persistence or delivery mechanism.
package entity

// FloorPlanDescriptor identifies one floor-plan document and the coordinate
// space (0..Width, 0..Height) that all point data for that building/floor is
// expressed in. Descriptors are registry-defined and immutable.
type FloorPlanDescriptor struct {
	ID          string  `json:"id"`
	BuildingID  string  `json:"buildingId"`
	FloorNumber string  `json:"floorNumber"`
	Name        string  `json:"name"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

// BuildingFloorKey is the composite key for registry lookups. Cached room,
// point, and POI data is invalidated whenever either component changes.
type BuildingFloorKey struct {
	BuildingID  string
	FloorNumber string
}

// RoomPoint is a named location in floor-plan coordinate space. Room points
// are fetched per building/floor and replaced wholesale on re-fetch.
type RoomPoint struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// PoiMarker is a point of interest (elevator, stairs, exit, ...) in
// floor-plan coordinate space. Type selects the visual glyph; renderers fall
// back to a generic glyph for unrecognized types.
type PoiMarker struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	DisplayName string  `json:"displayName"`
	Type        string  `json:"type"`
}

// Well-known POI marker types.
const (
	PoiTypeElevator = "elevator"
	PoiTypeStairs   = "stairs"
	PoiTypeExit     = "exit"
	PoiTypeWashroom = "washroom"
	PoiTypeFountain = "fountain"
)
