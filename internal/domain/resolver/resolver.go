// Package resolver maps user-facing building identifiers to floor lists,
// default floors, and the composite identifiers the directions backend
// expects. All functions are pure and synchronous.
package resolver

import (
	"wayfinder/internal/domain/registry"
)

// backendNames maps a user-facing building code to the backend's building
// name. Unknown codes degrade to "Building-<id>".
var backendNames = map[string]string{
	"H":  "Hall",
	"MB": "MB",
	"CC": "CC",
	"VE": "VE",
	"VL": "VL",
}

// hardcodedDefaults is the per-building default floor used when the registry
// has no entries for a building, and when a backend id is requested without
// an explicit floor.
var hardcodedDefaults = map[string]string{
	"H":  "8",
	"MB": "S2",
	"CC": "1",
	"VE": "1",
	"VL": "1",
}

const fallbackFloor = "1"

// Resolver answers building/floor questions against the floor registry.
type Resolver struct {
	reg *registry.Registry
}

// New creates a resolver over the given registry.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// HasIndoorMaps reports whether at least one floor plan is registered for
// the building.
func (r *Resolver) HasIndoorMaps(buildingID string) bool {
	return len(r.reg.FloorsFor(buildingID)) > 0
}

// AvailableFloors returns the building's registered floors, lexicographically
// ascending. Unregistered buildings yield an empty slice.
func (r *Resolver) AvailableFloors(buildingID string) []string {
	return r.reg.FloorsFor(buildingID)
}

// Buildings returns every building id with at least one registered floor
// plan, sorted ascending.
func (r *Resolver) Buildings() []string {
	return r.reg.Buildings()
}

// DefaultFloor returns the first available floor. Buildings with no
// registered floors fall back to the hardcoded per-building default, then
// to "1". Never panics.
func (r *Resolver) DefaultFloor(buildingID string) string {
	if floors := r.reg.FloorsFor(buildingID); len(floors) > 0 {
		return floors[0]
	}
	if floor, ok := hardcodedDefaults[buildingID]; ok {
		return floor
	}

	return fallbackFloor
}

// BackendBuildingID maps a user-facing building id plus optional floor to
// the composite identifier the directions backend expects, e.g. building
// "H" floor "8" becomes "Hall-8". When the floor is omitted the building's
// fixed default floor is used. Unknown buildings degrade to "Building-<id>".
func (r *Resolver) BackendBuildingID(buildingID string, floor ...string) string {
	name, known := backendNames[buildingID]
	if !known {
		return "Building-" + buildingID
	}

	floorNumber := hardcodedDefaults[buildingID]
	if len(floor) > 0 && floor[0] != "" {
		floorNumber = floor[0]
	}

	return name + "-" + floorNumber
}
