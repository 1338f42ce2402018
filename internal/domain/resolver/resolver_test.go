package resolver

import (
	"sort"
	"testing"

	"wayfinder/internal/domain/registry"

	"github.com/stretchr/testify/assert"
)

func newResolver() *Resolver {
	return New(registry.New())
}

func TestResolver_HasIndoorMaps(t *testing.T) {
	r := newResolver()

	assert.True(t, r.HasIndoorMaps("H"))
	assert.True(t, r.HasIndoorMaps("MB"))
	assert.False(t, r.HasIndoorMaps("XX"))
	assert.False(t, r.HasIndoorMaps(""))
}

func TestResolver_AvailableFloors(t *testing.T) {
	r := newResolver()

	assert.Equal(t, []string{"8", "9"}, r.AvailableFloors("H"))
	assert.Empty(t, r.AvailableFloors("XX"))

	for _, building := range registry.New().Buildings() {
		floors := r.AvailableFloors(building)
		assert.True(t, sort.StringsAreSorted(floors), "floors for %s: %v", building, floors)
	}
}

func TestResolver_Buildings(t *testing.T) {
	r := newResolver()

	buildings := r.Buildings()
	assert.Equal(t, registry.New().Buildings(), buildings)
	assert.True(t, sort.StringsAreSorted(buildings))

	for _, building := range buildings {
		assert.True(t, r.HasIndoorMaps(building))
	}
}

func TestResolver_DefaultFloor(t *testing.T) {
	r := newResolver()

	// First available floor for registered buildings.
	for _, building := range registry.New().Buildings() {
		assert.Equal(t, r.AvailableFloors(building)[0], r.DefaultFloor(building))
	}

	// Unregistered buildings degrade without panicking.
	assert.Equal(t, "1", r.DefaultFloor("XX"))
	assert.Equal(t, "1", r.DefaultFloor(""))
}

func TestResolver_BackendBuildingID(t *testing.T) {
	r := newResolver()

	tests := []struct {
		name     string
		building string
		floor    []string
		want     string
	}{
		{name: "hall default floor", building: "H", want: "Hall-8"},
		{name: "hall explicit floor", building: "H", floor: []string{"9"}, want: "Hall-9"},
		{name: "hall empty floor uses default", building: "H", floor: []string{""}, want: "Hall-8"},
		{name: "mb default floor", building: "MB", want: "MB-S2"},
		{name: "unknown building", building: "XX", want: "Building-XX"},
		{name: "unknown building ignores floor", building: "XX", floor: []string{"3"}, want: "Building-XX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.BackendBuildingID(tt.building, tt.floor...))
		})
	}
}
