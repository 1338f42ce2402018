// Package registry holds the static floor-plan registry: the compiled-in
// table of every building/floor combination that has an indoor map.
package registry

import (
	"sort"

	"wayfinder/internal/domain/entity"
)

// Registry is a read-only lookup of building+floor to floor-plan metadata.
// It is built once at process start and never mutated afterwards.
type Registry struct {
	plans map[entity.BuildingFloorKey]entity.FloorPlanDescriptor
}

// New builds the registry from the compiled-in campus table.
func New() *Registry {
	r := &Registry{plans: make(map[entity.BuildingFloorKey]entity.FloorPlanDescriptor)}
	for _, d := range campusPlans {
		r.plans[entity.BuildingFloorKey{BuildingID: d.BuildingID, FloorNumber: d.FloorNumber}] = d
	}

	return r
}

// Lookup returns the descriptor for the given building/floor, if registered.
func (r *Registry) Lookup(key entity.BuildingFloorKey) (entity.FloorPlanDescriptor, bool) {
	d, ok := r.plans[key]

	return d, ok
}

// FloorsFor returns every registered floor of a building, lexicographically
// ascending. Unregistered buildings yield an empty slice.
func (r *Registry) FloorsFor(buildingID string) []string {
	floors := make([]string, 0, 4)
	for key := range r.plans {
		if key.BuildingID == buildingID {
			floors = append(floors, key.FloorNumber)
		}
	}
	sort.Strings(floors)

	return floors
}

// Buildings returns the distinct building ids with at least one registered
// floor plan, sorted ascending.
func (r *Registry) Buildings() []string {
	seen := make(map[string]struct{})
	for key := range r.plans {
		seen[key.BuildingID] = struct{}{}
	}
	buildings := make([]string, 0, len(seen))
	for id := range seen {
		buildings = append(buildings, id)
	}
	sort.Strings(buildings)

	return buildings
}

// campusPlans is the static campus table. Dimensions define each floor's
// coordinate space; all room, POI, and route points for a floor are expressed
// in 0..Width / 0..Height.
var campusPlans = []entity.FloorPlanDescriptor{
	{ID: "hall-8", BuildingID: "H", FloorNumber: "8", Name: "Hall Building, 8th floor", Width: 1024, Height: 1024},
	{ID: "hall-9", BuildingID: "H", FloorNumber: "9", Name: "Hall Building, 9th floor", Width: 1024, Height: 1024},
	{ID: "mb-1", BuildingID: "MB", FloorNumber: "1", Name: "John Molson Building, 1st floor", Width: 1024, Height: 768},
	{ID: "mb-s2", BuildingID: "MB", FloorNumber: "S2", Name: "John Molson Building, S2 level", Width: 1024, Height: 768},
	{ID: "cc-1", BuildingID: "CC", FloorNumber: "1", Name: "Central Building, 1st floor", Width: 1600, Height: 512},
	{ID: "ve-1", BuildingID: "VE", FloorNumber: "1", Name: "Vanier Extension, 1st floor", Width: 800, Height: 600},
	{ID: "ve-2", BuildingID: "VE", FloorNumber: "2", Name: "Vanier Extension, 2nd floor", Width: 800, Height: 600},
	{ID: "vl-1", BuildingID: "VL", FloorNumber: "1", Name: "Vanier Library, 1st floor", Width: 900, Height: 700},
	{ID: "vl-2", BuildingID: "VL", FloorNumber: "2", Name: "Vanier Library, 2nd floor", Width: 900, Height: 700},
}
