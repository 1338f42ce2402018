package entity

// RoomPickTarget tells the room-selection UI which endpoint it should be
// pre-targeted at after a marker tap.
type RoomPickTarget string

const (
	PickNone  RoomPickTarget = ""
	PickStart RoomPickTarget = "start"
	PickEnd   RoomPickTarget = "end"
)

// NavigationSelection is the controller-owned screen state.
//
// Invariants:
//   - Route is non-nil only if both StartRoom and EndRoom are non-empty and
//     unequal.
//   - Any change to BuildingID resets CurrentFloor to that building's default
//     and clears StartRoom, EndRoom, and Route.
type NavigationSelection struct {
	BuildingID         string         `json:"buildingId"`
	CurrentFloor       string         `json:"currentFloor"`
	StartRoom          string         `json:"startRoom"`
	EndRoom            string         `json:"endRoom"`
	Route              *IndoorRoute   `json:"route,omitempty"`
	IsLoadingRoute     bool           `json:"isLoadingRoute"`
	FloorPlanAvailable bool           `json:"floorPlanAvailable"`
	PendingPick        RoomPickTarget `json:"pendingPick,omitempty"`
}

// HasEndpoints reports whether a route fetch is warranted: both rooms set
// and different.
func (s *NavigationSelection) HasEndpoints() bool {
	return s.StartRoom != "" && s.EndRoom != "" && s.StartRoom != s.EndRoom
}
