// Package render owns the lifecycle of the embedded floor-plan rendering
// surface: loading content, masking the readiness race between "the host
// wants to draw" and "the renderer finished initializing", and relaying
// marker tap events back to the host.
package render

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"

	"go.uber.org/fx"
)

const postTimeout = 5 * time.Second

// Params holds dependencies for the bridge, injected by Fx.
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Surface service.RenderSurface
	Plans   service.FloorPlanSource
}

// Bridge implements service.RenderBridge over a RenderSurface.
//
// Per floor-plan load the bridge is either Loading or Ready. The transition
// happens exactly once per load, triggered by the renderer's webViewReady
// event or, failing that, by the ready-timeout fallback so the UI is never
// stuck. While Loading, at most one command is buffered (the most recent
// wins) and retried with a fixed delay a bounded number of times.
type Bridge struct {
	surface service.RenderSurface
	plans   service.FloorPlanSource
	logger  *slog.Logger

	readyTimeout  time.Duration
	retryAttempts int
	retryDelay    time.Duration

	mu        sync.Mutex
	ready     bool
	pending   *Command
	loadSeq   uint64
	onRoomTap func(entity.RoomPoint)
	onPoiTap  func(entity.PoiMarker)
}

// New creates the bridge.
func New(params Params) service.RenderBridge {
	rc := params.Config.Renderer

	return &Bridge{
		surface:       params.Surface,
		plans:         params.Plans,
		logger:        params.Logger,
		readyTimeout:  rc.ReadyTimeout,
		retryAttempts: rc.RetryAttempts,
		retryDelay:    rc.RetryDelay,
	}
}

// SetTapHandlers registers the host callbacks for marker taps.
func (b *Bridge) SetTapHandlers(onRoomTap func(entity.RoomPoint), onPoiTap func(entity.PoiMarker)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onRoomTap = onRoomTap
	b.onPoiTap = onPoiTap
}

// LoadFloorPlan loads a floor plan into the surface and resets readiness.
// A load failure is not fatal to the surface: it is promoted to a blank
// ready state, and ErrPlanNotFound is returned so the caller can surface
// "floor plan unavailable".
func (b *Bridge) LoadFloorPlan(ctx context.Context, buildingID, floor string) error {
	seq := b.beginLoad()

	content, err := b.plans.FetchPlan(ctx, buildingID, floor)
	if err != nil {
		// Blank ready surface rather than a stuck loading screen.
		b.markReady(seq)
		if errors.Is(err, service.ErrPlanNotFound) {
			b.logger.Warn("no floor plan content",
				slog.String("building", buildingID),
				slog.String("floor", floor),
			)

			return service.ErrPlanNotFound
		}

		return errors.Wrap(err, "fetch floor plan")
	}

	if err := b.surface.LoadContent(ctx, content); err != nil {
		b.markReady(seq)

		return errors.Wrap(err, "load floor plan content")
	}

	// Fallback promotion: if the renderer never signals readiness, promote
	// after the timeout so queued commands are not stranded.
	time.AfterFunc(b.readyTimeout, func() {
		b.markReady(seq)
	})

	return nil
}

// DrawRoute draws the route polyline and endpoint markers.
func (b *Bridge) DrawRoute(points []entity.RoutePoint) {
	cmd, err := newRouteCommand(points)
	if err != nil {
		b.logger.Error("encode drawRoute command", slog.Any("error", err))

		return
	}
	b.submit(cmd)
}

// ClearRoute removes the route overlay. Safe when nothing is drawn.
func (b *Bridge) ClearRoute() {
	b.submitOp(OpClearRoute, nil)
}

// ShowRoomMarkers replaces the full room marker set.
func (b *Bridge) ShowRoomMarkers(points []entity.RoomPoint) {
	b.submitOp(OpShowRoomMarkers, roomMarkersPayload{Points: points})
}

// HideRoomMarkers removes all room markers.
func (b *Bridge) HideRoomMarkers() {
	b.submitOp(OpHideRoomMarkers, nil)
}

// ShowPois replaces the full POI marker set. Glyph selection by POI type
// happens renderer-side, with a generic fallback for unknown types.
func (b *Bridge) ShowPois(pois []entity.PoiMarker) {
	b.submitOp(OpShowPois, poisPayload{Pois: pois})
}

// HidePois removes all POI markers.
func (b *Bridge) HidePois() {
	b.submitOp(OpHidePois, nil)
}

// HandleEvent processes one raw event envelope from the renderer. Malformed
// or unrecognized payloads are dropped without surfacing an error.
func (b *Bridge) HandleEvent(raw []byte) {
	var evt Event
	if err := json.Unmarshal(raw, &evt); err != nil {
		b.logger.Debug("malformed renderer event", slog.Any("error", err))

		return
	}

	switch evt.Kind {
	case EventReady:
		b.mu.Lock()
		seq := b.loadSeq
		b.mu.Unlock()
		b.markReady(seq)

	case EventRoomTap:
		var point entity.RoomPoint
		if err := json.Unmarshal(evt.Payload, &point); err != nil || point.ID == "" {
			return
		}
		b.mu.Lock()
		handler := b.onRoomTap
		b.mu.Unlock()
		if handler != nil {
			handler(point)
		}

	case EventPoiTap:
		var poi entity.PoiMarker
		if err := json.Unmarshal(evt.Payload, &poi); err != nil || poi.ID == "" {
			return
		}
		b.mu.Lock()
		handler := b.onPoiTap
		b.mu.Unlock()
		if handler != nil {
			handler(poi)
		}

	case EventRouteDrawn:
		b.logger.Debug("route drawn acknowledged")

	default:
		// Unknown event kinds are ignored.
	}
}

// beginLoad resets readiness for a new floor-plan load and invalidates any
// timers or retries belonging to the previous load.
func (b *Bridge) beginLoad() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ready = false
	b.pending = nil
	b.loadSeq++

	return b.loadSeq
}

// markReady promotes the load identified by seq to Ready, exactly once, and
// flushes the pending command if any.
func (b *Bridge) markReady(seq uint64) {
	b.mu.Lock()
	if b.loadSeq != seq || b.ready {
		b.mu.Unlock()

		return
	}
	b.ready = true
	cmd := b.pending
	b.pending = nil
	b.mu.Unlock()

	if cmd != nil {
		b.post(cmd)
	}
}

func (b *Bridge) submitOp(op CommandOp, payload any) {
	cmd, err := newCommand(op, payload)
	if err != nil {
		b.logger.Error("encode renderer command", slog.String("op", string(op)), slog.Any("error", err))

		return
	}
	b.submit(cmd)
}

// submit delivers a command immediately when Ready, otherwise stores it in
// the single pending slot (overwriting any previously pending command) and
// retries until Ready or attempts are exhausted.
func (b *Bridge) submit(cmd *Command) {
	b.mu.Lock()
	if b.ready {
		b.mu.Unlock()
		b.post(cmd)

		return
	}
	b.pending = cmd
	seq := b.loadSeq
	b.mu.Unlock()

	go b.retryPending(seq, cmd.ID)
}

// retryPending re-checks the pending slot with a fixed delay. The command is
// dropped when a newer command overwrote the slot, a new load started, or
// attempts ran out. Dropping is silent: overlays are best-effort.
func (b *Bridge) retryPending(seq uint64, cmdID string) {
	for attempt := 0; attempt < b.retryAttempts; attempt++ {
		time.Sleep(b.retryDelay)

		b.mu.Lock()
		if b.loadSeq != seq || b.pending == nil || b.pending.ID != cmdID {
			b.mu.Unlock()

			return
		}
		if b.ready {
			cmd := b.pending
			b.pending = nil
			b.mu.Unlock()
			b.post(cmd)

			return
		}
		b.mu.Unlock()
	}

	b.mu.Lock()
	if b.pending != nil && b.pending.ID == cmdID {
		b.pending = nil
	}
	b.mu.Unlock()

	b.logger.Debug("renderer command dropped, surface never became ready",
		slog.String("command", cmdID),
	)
}

// post serializes and injects one command into the surface.
func (b *Bridge) post(cmd *Command) {
	raw, err := json.Marshal(cmd)
	if err != nil {
		b.logger.Error("marshal renderer command", slog.Any("error", err))

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), postTimeout)
	defer cancel()

	if err := b.surface.PostCommand(ctx, raw); err != nil {
		b.logger.Warn("renderer command delivery failed",
			slog.String("op", string(cmd.Op)),
			slog.Any("error", err),
		)
	}
}
