package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// RoutePoint is an ordered waypoint of a computed indoor path, expressed in
// floor-plan coordinate space. Order defines traversal direction.
type RoutePoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// RouteStep is a single turn-by-turn instruction of an indoor route.
type RouteStep struct {
	Instruction    string  `json:"instruction"`
	DistanceMeters float64 `json:"distanceMeters"`
}

// IndoorRoute is the directions backend's answer for one origin/destination
// pair. It is owned by the navigation controller for the lifetime of the
// current route and replaced or cleared when room selection changes.
type IndoorRoute struct {
	Distance     float64      `json:"distance"`
	Duration     float64      `json:"duration"`
	BuildingName string       `json:"buildingName"`
	BuildingID   string       `json:"buildingId"`
	StartFloor   string       `json:"startFloor"`
	EndFloor     string       `json:"endFloor"`
	Steps        []RouteStep  `json:"steps"`
	RoutePoints  []RoutePoint `json:"routePoints"`
	StairMessage string       `json:"stairMessage,omitempty"`
}

// RoutePath converts route points into an orb.LineString for planar math.
func RoutePath(points []RoutePoint) orb.LineString {
	path := make(orb.LineString, 0, len(points))
	for _, p := range points {
		path = append(path, orb.Point{p.X, p.Y})
	}

	return path
}

// RoutePathLength returns the planar length of the route polyline in
// floor-plan units. Routes with fewer than two points have length zero.
func RoutePathLength(points []RoutePoint) float64 {
	if len(points) < 2 {
		return 0
	}

	return planar.Length(RoutePath(points))
}

// RouteBounds returns the bounding box of the route polyline, used by the
// renderer as a fit-viewport hint.
func RouteBounds(points []RoutePoint) orb.Bound {
	return RoutePath(points).Bound()
}
