package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/resolver"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
	"wayfinder/internal/usecase"
	"wayfinder/internal/util"

	"go.uber.org/fx"
)

const (
	promptSelectDestination = "Select a destination."
	promptSelectStart       = "Select a starting point."
)

// NavigationServiceParams holds dependencies for the navigation service,
// injected by Fx.
type NavigationServiceParams struct {
	fx.In

	Resolver   *resolver.Resolver
	Directions service.DirectionsService
	Bridge     service.RenderBridge
	Logger     *slog.Logger
}

// navigationService implements the NavigationUsecase interface. It owns the
// NavigationSelection screen state exclusively; the rendering bridge owns
// surface readiness. The two interact only through the bridge's command and
// callback contract.
type navigationService struct {
	resolver   *resolver.Resolver
	directions service.DirectionsService
	bridge     service.RenderBridge
	logger     *slog.Logger

	mu         sync.Mutex
	sel        entity.NavigationSelection
	rooms      []string
	roomPoints []entity.RoomPoint
	pois       []entity.PoiMarker

	// routeGen tags each route fetch; responses whose generation no longer
	// matches the latest are discarded so a slow early request cannot
	// overwrite the result of a faster later one.
	routeGen atomic.Uint64
}

// NewNavigationService creates the navigation controller and registers its
// tap handlers on the bridge.
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	s := &navigationService{
		resolver:   params.Resolver,
		directions: params.Directions,
		bridge:     params.Bridge,
		logger:     params.Logger,
	}
	s.bridge.SetTapHandlers(s.handleRoomTap, s.handlePoiTap)

	return s
}

// SelectBuilding activates a building: floor resets to the default, rooms
// and route clear, the floor plan reloads, decoration data refetches.
func (s *navigationService) SelectBuilding(ctx context.Context, buildingID string) error {
	if !s.resolver.HasIndoorMaps(buildingID) {
		return domainerrors.ErrBuildingNotFound
	}

	s.mu.Lock()
	s.sel = entity.NavigationSelection{
		BuildingID:   buildingID,
		CurrentFloor: s.resolver.DefaultFloor(buildingID),
	}
	s.rooms = nil
	s.roomPoints = nil
	s.pois = nil
	s.mu.Unlock()

	// Invalidate any in-flight route fetch for the previous selection.
	s.routeGen.Add(1)
	s.bridge.ClearRoute()

	return s.reloadFloor(ctx)
}

// SelectFloor switches floors within the active building. Invalid floors
// are ignored in favor of the resolved default.
func (s *navigationService) SelectFloor(ctx context.Context, floor string) error {
	s.mu.Lock()
	building := s.sel.BuildingID
	s.mu.Unlock()

	if building == "" {
		return domainerrors.ErrInvalidSelection
	}

	if !s.isValidFloor(building, floor) {
		floor = s.resolver.DefaultFloor(building)
	}

	s.mu.Lock()
	s.sel.CurrentFloor = floor
	s.sel.StartRoom = ""
	s.sel.EndRoom = ""
	s.sel.Route = nil
	s.sel.IsLoadingRoute = false
	s.sel.PendingPick = entity.PickNone
	s.rooms = nil
	s.roomPoints = nil
	s.pois = nil
	s.mu.Unlock()

	s.routeGen.Add(1)
	s.bridge.ClearRoute()

	return s.reloadFloor(ctx)
}

// Navigate applies inbound navigation parameters.
func (s *navigationService) Navigate(ctx context.Context, buildingID, floor string) error {
	if err := s.SelectBuilding(ctx, buildingID); err != nil {
		return err
	}

	if floor == "" || !s.isValidFloor(buildingID, floor) {
		// Building selection already resolved the default floor.
		return nil
	}

	return s.SelectFloor(ctx, floor)
}

// SelectStartRoom updates the start endpoint.
func (s *navigationService) SelectStartRoom(ctx context.Context, room string) error {
	s.mu.Lock()
	if s.sel.BuildingID == "" {
		s.mu.Unlock()

		return domainerrors.ErrInvalidSelection
	}
	s.sel.StartRoom = room
	s.sel.PendingPick = entity.PickNone
	s.mu.Unlock()

	s.evaluateRoute(ctx)

	return nil
}

// SelectEndRoom updates the end endpoint.
func (s *navigationService) SelectEndRoom(ctx context.Context, room string) error {
	s.mu.Lock()
	if s.sel.BuildingID == "" {
		s.mu.Unlock()

		return domainerrors.ErrInvalidSelection
	}
	s.sel.EndRoom = room
	s.sel.PendingPick = entity.PickNone
	s.mu.Unlock()

	s.evaluateRoute(ctx)

	return nil
}

// Swap exchanges start and end rooms verbatim.
func (s *navigationService) Swap(ctx context.Context) error {
	s.mu.Lock()
	if s.sel.BuildingID == "" {
		s.mu.Unlock()

		return domainerrors.ErrInvalidSelection
	}
	s.sel.StartRoom, s.sel.EndRoom = s.sel.EndRoom, s.sel.StartRoom
	s.mu.Unlock()

	s.evaluateRoute(ctx)

	return nil
}

// Clear resets room selection and route, keeping building and floor.
func (s *navigationService) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.sel.StartRoom = ""
	s.sel.EndRoom = ""
	s.sel.Route = nil
	s.sel.IsLoadingRoute = false
	s.sel.PendingPick = entity.PickNone
	s.mu.Unlock()

	s.routeGen.Add(1)
	s.bridge.ClearRoute()

	return nil
}

// State returns a snapshot of the navigation screen.
func (s *navigationService) State() *usecase.NavigationState {
	s.mu.Lock()
	sel := s.sel
	rooms := append([]string(nil), s.rooms...)
	points := append([]entity.RoomPoint(nil), s.roomPoints...)
	pois := append([]entity.PoiMarker(nil), s.pois...)
	s.mu.Unlock()

	return &usecase.NavigationState{
		Selection:       sel,
		AvailableFloors: s.resolver.AvailableFloors(sel.BuildingID),
		AvailableRooms:  rooms,
		RoomPoints:      points,
		Pois:            pois,
		Summary:         summarize(&sel),
	}
}

// Buildings lists every building with indoor maps.
func (s *navigationService) Buildings() []usecase.BuildingInfo {
	ids := s.resolver.Buildings()
	infos := make([]usecase.BuildingInfo, 0, len(ids))
	for _, id := range ids {
		infos = append(infos, usecase.BuildingInfo{
			ID:           id,
			Floors:       s.resolver.AvailableFloors(id),
			DefaultFloor: s.resolver.DefaultFloor(id),
		})
	}

	return infos
}

// handleRoomTap implements the marker tap handoff: without a start room the
// tapped room becomes the destination and the room picker is pre-targeted at
// the start; with a start room it simply replaces the destination.
func (s *navigationService) handleRoomTap(point entity.RoomPoint) {
	s.mu.Lock()
	s.sel.EndRoom = point.ID
	if s.sel.StartRoom == "" {
		s.sel.PendingPick = entity.PickStart
	} else {
		s.sel.PendingPick = entity.PickNone
	}
	s.mu.Unlock()

	s.evaluateRoute(context.Background())
}

// handlePoiTap treats a POI tap like a room tap on the POI's identifier.
func (s *navigationService) handlePoiTap(poi entity.PoiMarker) {
	s.handleRoomTap(entity.RoomPoint{ID: poi.ID, X: poi.X, Y: poi.Y})
}

// evaluateRoute applies the room-selection rule: both endpoints set and
// different triggers a fetch; anything else clears the route.
func (s *navigationService) evaluateRoute(ctx context.Context) {
	s.mu.Lock()
	if !s.sel.HasEndpoints() {
		s.sel.Route = nil
		s.sel.IsLoadingRoute = false
		s.mu.Unlock()

		s.routeGen.Add(1)
		s.bridge.ClearRoute()

		return
	}
	building := s.sel.BuildingID
	floor := s.sel.CurrentFloor
	origin := s.sel.StartRoom
	destination := s.sel.EndRoom
	gen := s.routeGen.Add(1)
	s.sel.IsLoadingRoute = true
	s.mu.Unlock()

	// Every path that bumps the generation resets IsLoadingRoute itself, so
	// a superseded fetch must leave the flag alone here.
	defer func() {
		if gen == s.routeGen.Load() {
			s.mu.Lock()
			s.sel.IsLoadingRoute = false
			s.mu.Unlock()
		}
	}()

	backendID := s.resolver.BackendBuildingID(building, floor)
	route, err := s.directions.GetIndoorDirections(ctx, backendID, origin, destination, floor, floor)

	if gen != s.routeGen.Load() {
		// A newer selection superseded this fetch; drop the response.
		return
	}

	if err != nil || route == nil || len(route.RoutePoints) == 0 {
		if err != nil {
			s.logger.Warn("indoor directions fetch failed",
				slog.String("building", backendID),
				slog.String("origin", origin),
				slog.String("destination", destination),
				slog.Any("error", err),
			)
		}
		s.mu.Lock()
		s.sel.Route = nil
		s.mu.Unlock()
		s.bridge.ClearRoute()

		return
	}

	s.mu.Lock()
	s.sel.Route = route
	s.mu.Unlock()
	s.bridge.DrawRoute(route.RoutePoints)
}

// reloadFloor loads the floor plan and refetches decoration data for the
// current building/floor. Each decoration fetch is independent and
// best-effort; a missing floor plan is reflected in the selection state
// rather than returned as a failure.
func (s *navigationService) reloadFloor(ctx context.Context) error {
	s.mu.Lock()
	building := s.sel.BuildingID
	floor := s.sel.CurrentFloor
	s.mu.Unlock()

	planAvailable := true
	if err := s.bridge.LoadFloorPlan(ctx, building, floor); err != nil {
		if !errors.Is(err, service.ErrPlanNotFound) {
			return err
		}
		planAvailable = false
	}

	backendID := s.resolver.BackendBuildingID(building, floor)
	rooms := s.directions.GetAvailableRooms(ctx, backendID, floor)
	points := s.directions.GetRoomPoints(ctx, backendID, floor)
	pois := s.directions.GetPointsOfInterest(ctx, backendID, floor)

	s.mu.Lock()
	s.sel.FloorPlanAvailable = planAvailable
	s.rooms = rooms
	s.roomPoints = points
	s.pois = pois
	s.mu.Unlock()

	s.bridge.ShowRoomMarkers(points)
	s.bridge.ShowPois(pois)

	return nil
}

func (s *navigationService) isValidFloor(buildingID, floor string) bool {
	for _, f := range s.resolver.AvailableFloors(buildingID) {
		if f == floor {
			return true
		}
	}

	return false
}

// summarize builds the route summary shown next to the floor plan.
func summarize(sel *entity.NavigationSelection) usecase.RouteSummary {
	if sel.Route != nil {
		return usecase.RouteSummary{
			From:         sel.StartRoom,
			To:           sel.EndRoom,
			Distance:     util.FormatDistance(sel.Route.Distance),
			Duration:     util.FormatDuration(time.Duration(sel.Route.Duration * float64(time.Second))),
			StairMessage: sel.Route.StairMessage,
		}
	}

	switch {
	case sel.StartRoom != "" && sel.EndRoom == "":
		return usecase.RouteSummary{Prompt: promptSelectDestination}
	case sel.EndRoom != "" && sel.StartRoom == "":
		return usecase.RouteSummary{Prompt: promptSelectStart}
	default:
		return usecase.RouteSummary{}
	}
}
