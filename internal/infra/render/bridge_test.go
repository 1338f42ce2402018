package render

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSurface records every frame posted by the bridge.
type captureSurface struct {
	mu       sync.Mutex
	loads    [][]byte
	commands []Command
}

func (s *captureSurface) LoadContent(ctx context.Context, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads = append(s.loads, content)

	return nil
}

func (s *captureSurface) PostCommand(ctx context.Context, command []byte) error {
	var cmd Command
	if err := json.Unmarshal(command, &cmd); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, cmd)

	return nil
}

func (s *captureSurface) delivered() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Command, len(s.commands))
	copy(out, s.commands)

	return out
}

type fakePlans struct {
	content []byte
	err     error
}

func (p *fakePlans) FetchPlan(ctx context.Context, buildingID, floor string) ([]byte, error) {
	return p.content, p.err
}

func newTestBridge(t *testing.T, surface service.RenderSurface, plans service.FloorPlanSource) *Bridge {
	t.Helper()

	cfg := &config.Config{
		Renderer: &config.RendererConfig{
			ReadyTimeout:  200 * time.Millisecond,
			RetryAttempts: 5,
			RetryDelay:    10 * time.Millisecond,
			CommandBuffer: 16,
		},
	}

	bridge := New(Params{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Surface: surface,
		Plans:   plans,
	})

	return bridge.(*Bridge)
}

func readyEvent(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal(Event{Kind: EventReady})
	require.NoError(t, err)

	return raw
}

func opsOf(commands []Command) []CommandOp {
	ops := make([]CommandOp, 0, len(commands))
	for _, c := range commands {
		ops = append(ops, c.Op)
	}

	return ops
}

func TestBridge_DrawAfterReadyDeliversImmediately(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{content: []byte("<svg/>")})

	require.NoError(t, bridge.LoadFloorPlan(context.Background(), "H", "8"))
	bridge.HandleEvent(readyEvent(t))

	bridge.DrawRoute([]entity.RoutePoint{{X: 10, Y: 20}, {X: 30, Y: 40}})

	delivered := surface.delivered()
	require.Len(t, delivered, 1)
	assert.Equal(t, OpDrawRoute, delivered[0].Op)
}

func TestBridge_DrawBeforeReadyDeliversOnceOnReadiness(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{content: []byte("<svg/>")})

	require.NoError(t, bridge.LoadFloorPlan(context.Background(), "H", "8"))
	bridge.DrawRoute([]entity.RoutePoint{{X: 10, Y: 20}, {X: 30, Y: 40}})

	assert.Empty(t, surface.delivered())

	bridge.HandleEvent(readyEvent(t))

	// Give the retry goroutine time to observe readiness; exactly one
	// delivery must result either way.
	assert.Eventually(t, func() bool {
		return len(surface.delivered()) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	delivered := surface.delivered()
	require.Len(t, delivered, 1, "stale retries must not deliver duplicates")
	assert.Equal(t, OpDrawRoute, delivered[0].Op)
}

func TestBridge_MarkerOverlaysReplaceAndHide(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{content: []byte("<svg/>")})

	require.NoError(t, bridge.LoadFloorPlan(context.Background(), "H", "8"))
	bridge.HandleEvent(readyEvent(t))

	bridge.ShowRoomMarkers([]entity.RoomPoint{{ID: "H-801", X: 1, Y: 2}})
	bridge.ShowPois([]entity.PoiMarker{{ID: "elev-1", Type: entity.PoiTypeElevator}})
	bridge.HideRoomMarkers()
	bridge.HidePois()

	assert.Equal(t, []CommandOp{
		OpShowRoomMarkers, OpShowPois, OpHideRoomMarkers, OpHidePois,
	}, opsOf(surface.delivered()))

	var payload roomMarkersPayload
	require.NoError(t, json.Unmarshal(surface.delivered()[0].Payload, &payload))
	require.Len(t, payload.Points, 1)
	assert.Equal(t, "H-801", payload.Points[0].ID)
}

func TestBridge_PendingCommandsCoalesceToMostRecent(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{content: []byte("<svg/>")})

	require.NoError(t, bridge.LoadFloorPlan(context.Background(), "H", "8"))

	bridge.DrawRoute([]entity.RoutePoint{{X: 1, Y: 1}, {X: 2, Y: 2}})
	bridge.ClearRoute()
	bridge.DrawRoute([]entity.RoutePoint{{X: 9, Y: 9}, {X: 8, Y: 8}})

	bridge.HandleEvent(readyEvent(t))

	assert.Eventually(t, func() bool {
		return len(surface.delivered()) == 1
	}, time.Second, 5*time.Millisecond)

	delivered := surface.delivered()
	require.Len(t, delivered, 1, "only the most recent pending command may survive")
	require.Equal(t, OpDrawRoute, delivered[0].Op)

	var payload routePayload
	require.NoError(t, json.Unmarshal(delivered[0].Payload, &payload))
	assert.Equal(t, 9.0, payload.Points[0].X)
}

func TestBridge_ReadyTimeoutPromotes(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{content: []byte("<svg/>")})
	bridge.retryDelay = 60 * time.Millisecond // keep the pending slot alive past the ready timeout

	require.NoError(t, bridge.LoadFloorPlan(context.Background(), "H", "8"))
	bridge.DrawRoute([]entity.RoutePoint{{X: 10, Y: 20}, {X: 30, Y: 40}})

	// No readiness event; the timeout fallback must flush the pending slot.
	assert.Eventually(t, func() bool {
		return len(surface.delivered()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestBridge_RetryAttemptsExhaustedDropsSilently(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{content: []byte("<svg/>")})
	bridge.readyTimeout = time.Hour // disable the fallback for this test

	require.NoError(t, bridge.LoadFloorPlan(context.Background(), "H", "8"))
	bridge.DrawRoute([]entity.RoutePoint{{X: 1, Y: 2}, {X: 3, Y: 4}})

	// 5 attempts x 10ms; after that the command is gone.
	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, surface.delivered())

	bridge.HandleEvent(readyEvent(t))
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, surface.delivered(), "an exhausted command must not resurface on readiness")
}

func TestBridge_NewLoadResetsReadinessAndPending(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{content: []byte("<svg/>")})

	require.NoError(t, bridge.LoadFloorPlan(context.Background(), "H", "8"))
	bridge.HandleEvent(readyEvent(t))
	bridge.DrawRoute([]entity.RoutePoint{{X: 1, Y: 1}, {X: 2, Y: 2}})
	require.Len(t, surface.delivered(), 1)

	// Second load: readiness resets, commands queue again.
	require.NoError(t, bridge.LoadFloorPlan(context.Background(), "H", "9"))
	bridge.ClearRoute()
	assert.Len(t, surface.delivered(), 1)

	bridge.HandleEvent(readyEvent(t))
	assert.Eventually(t, func() bool {
		return len(surface.delivered()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []CommandOp{OpDrawRoute, OpClearRoute}, opsOf(surface.delivered()))
}

func TestBridge_MissingPlanPromotesToBlankReady(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{err: service.ErrPlanNotFound})

	err := bridge.LoadFloorPlan(context.Background(), "H", "99")
	assert.ErrorIs(t, err, service.ErrPlanNotFound)

	// Surface must be usable right away despite the missing plan.
	bridge.ClearRoute()
	assert.Eventually(t, func() bool {
		return len(surface.delivered()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, surface.loads)
}

func TestBridge_TapEventsRelayedToHandlers(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{content: []byte("<svg/>")})

	var (
		mu       sync.Mutex
		roomTaps []entity.RoomPoint
		poiTaps  []entity.PoiMarker
	)
	bridge.SetTapHandlers(
		func(p entity.RoomPoint) {
			mu.Lock()
			defer mu.Unlock()
			roomTaps = append(roomTaps, p)
		},
		func(p entity.PoiMarker) {
			mu.Lock()
			defer mu.Unlock()
			poiTaps = append(poiTaps, p)
		},
	)

	roomRaw, _ := json.Marshal(map[string]any{
		"kind":    "roomTap",
		"payload": map[string]any{"id": "H-801", "x": 10, "y": 20},
	})
	poiRaw, _ := json.Marshal(map[string]any{
		"kind":    "poiTap",
		"payload": map[string]any{"id": "elev-1", "x": 5, "y": 6, "type": "elevator"},
	})
	bridge.HandleEvent(roomRaw)
	bridge.HandleEvent(poiRaw)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, roomTaps, 1)
	assert.Equal(t, "H-801", roomTaps[0].ID)
	require.Len(t, poiTaps, 1)
	assert.Equal(t, "elev-1", poiTaps[0].ID)
}

func TestBridge_MalformedEventsIgnored(t *testing.T) {
	surface := &captureSurface{}
	bridge := newTestBridge(t, surface, &fakePlans{content: []byte("<svg/>")})

	tapped := false
	bridge.SetTapHandlers(
		func(entity.RoomPoint) { tapped = true },
		func(entity.PoiMarker) { tapped = true },
	)

	bridge.HandleEvent([]byte("not json"))
	bridge.HandleEvent([]byte(`{"kind": "unknownKind"}`))
	bridge.HandleEvent([]byte(`{"kind": "roomTap", "payload": "garbage"}`))
	bridge.HandleEvent([]byte(`{"kind": "roomTap", "payload": {"x": 1, "y": 2}}`))

	assert.False(t, tapped)
	assert.Empty(t, surface.delivered())
}
