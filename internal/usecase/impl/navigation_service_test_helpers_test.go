package impl

import (
	"io"
	"log/slog"
	"testing"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/registry"
	"wayfinder/internal/domain/resolver"
	mockSvc "wayfinder/internal/mocks/service"
	"wayfinder/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// navigationFixture wires the navigation service against mocks plus the real
// campus registry and resolver, capturing the tap handlers the service
// registers on the bridge.
type navigationFixture struct {
	service    usecase.NavigationUsecase
	directions *mockSvc.MockDirectionsService
	bridge     *mockSvc.MockRenderBridge

	roomTap func(entity.RoomPoint)
	poiTap  func(entity.PoiMarker)
}

func newNavigationFixture(t *testing.T) *navigationFixture {
	t.Helper()

	f := &navigationFixture{
		directions: mockSvc.NewMockDirectionsService(t),
		bridge:     mockSvc.NewMockRenderBridge(t),
	}

	f.bridge.EXPECT().
		SetTapHandlers(mock.Anything, mock.Anything).
		Run(func(onRoomTap func(entity.RoomPoint), onPoiTap func(entity.PoiMarker)) {
			f.roomTap = onRoomTap
			f.poiTap = onPoiTap
		}).
		Return()

	f.service = NewNavigationService(NavigationServiceParams{
		Resolver:   resolver.New(registry.New()),
		Directions: f.directions,
		Bridge:     f.bridge,
		Logger:     newDiscardLogger(),
	})

	return f
}

// expectFloorLoad registers the expectations a building/floor activation
// produces: plan load, decoration refetch, marker redraw.
func (f *navigationFixture) expectFloorLoad(backendID, floor string, planErr error) {
	f.bridge.EXPECT().
		LoadFloorPlan(mock.Anything, mock.Anything, floor).
		Return(planErr)
	f.bridge.EXPECT().ClearRoute().Return()
	f.directions.EXPECT().
		GetAvailableRooms(mock.Anything, backendID, floor).
		Return([]string{"R-1", "R-2"})
	f.directions.EXPECT().
		GetRoomPoints(mock.Anything, backendID, floor).
		Return([]entity.RoomPoint{{ID: "R-1", X: 1, Y: 2}})
	f.directions.EXPECT().
		GetPointsOfInterest(mock.Anything, backendID, floor).
		Return([]entity.PoiMarker{{ID: "elev-1", Type: entity.PoiTypeElevator}})
	f.bridge.EXPECT().ShowRoomMarkers(mock.Anything).Return()
	f.bridge.EXPECT().ShowPois(mock.Anything).Return()
}

func testRoute(from, to string) *entity.IndoorRoute {
	return &entity.IndoorRoute{
		Distance:   850,
		Duration:   90,
		BuildingID: "Hall-8",
		StartFloor: "8",
		EndFloor:   "8",
		Steps: []entity.RouteStep{
			{Instruction: "Head toward " + to, DistanceMeters: 850},
		},
		RoutePoints: []entity.RoutePoint{
			{X: 10, Y: 10, Label: from},
			{X: 200, Y: 340, Label: to},
		},
	}
}
