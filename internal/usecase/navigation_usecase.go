// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// --- Output DTOs ---

// RouteSummary is the human-readable digest of the current route state
// shown next to the floor plan.
type RouteSummary struct {
	From         string `json:"from,omitempty"`
	To           string `json:"to,omitempty"`
	Distance     string `json:"distance,omitempty"`
	Duration     string `json:"duration,omitempty"`
	StairMessage string `json:"stairMessage,omitempty"`
	Prompt       string `json:"prompt,omitempty"`
}

// NavigationState is a snapshot of everything the UI shell needs to render
// the indoor navigation screen.
type NavigationState struct {
	Selection       entity.NavigationSelection `json:"selection"`
	AvailableFloors []string                   `json:"availableFloors"`
	AvailableRooms  []string                   `json:"availableRooms"`
	RoomPoints      []entity.RoomPoint         `json:"roomPoints"`
	Pois            []entity.PoiMarker         `json:"pois"`
	Summary         RouteSummary               `json:"summary"`
}

// BuildingInfo describes one building with indoor maps.
type BuildingInfo struct {
	ID           string   `json:"id"`
	Floors       []string `json:"floors"`
	DefaultFloor string   `json:"defaultFloor"`
}

// NavigationUsecase defines the interface for the indoor navigation screen
// orchestration. This is the contract the delivery layer depends on.
type NavigationUsecase interface {
	// SelectBuilding makes a building active: floor resets to the building's
	// default, room selection and route clear, and decoration data reloads.
	SelectBuilding(ctx context.Context, buildingID string) error

	// SelectFloor switches floors within the active building. An invalid
	// floor is ignored in favor of the resolved default.
	SelectFloor(ctx context.Context, floor string) error

	// Navigate applies inbound navigation parameters (deep link or screen
	// argument): building plus optional floor.
	Navigate(ctx context.Context, buildingID, floor string) error

	// SelectStartRoom and SelectEndRoom update one endpoint each. When both
	// endpoints are set and differ a route fetch is triggered; otherwise any
	// existing route is cleared.
	SelectStartRoom(ctx context.Context, room string) error
	SelectEndRoom(ctx context.Context, room string) error

	// Swap exchanges start and end rooms verbatim, including empty ones.
	Swap(ctx context.Context) error

	// Clear resets room selection and route, keeping the building and floor.
	Clear(ctx context.Context) error

	// State returns a snapshot of the current navigation screen state.
	State() *NavigationState

	// Buildings lists every building with indoor maps.
	Buildings() []BuildingInfo
}
