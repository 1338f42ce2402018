package render

import (
	"encoding/json"

	"wayfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CommandOp enumerates the instructions the bridge can inject into the
// rendering surface.
type CommandOp string

const (
	OpLoadPlan        CommandOp = "loadPlan"
	OpDrawRoute       CommandOp = "drawRoute"
	OpClearRoute      CommandOp = "clearRoute"
	OpShowRoomMarkers CommandOp = "showRoomMarkers"
	OpHideRoomMarkers CommandOp = "hideRoomMarkers"
	OpShowPois        CommandOp = "showPois"
	OpHidePois        CommandOp = "hidePois"
)

// Command is the serialized envelope of one renderer instruction.
// drawRoute carries replace semantics: the renderer removes the previous
// route polyline and endpoint markers before drawing, so re-issuing the same
// route yields the same visible state. showRoomMarkers and showPois replace
// the full marker set rather than appending.
type Command struct {
	ID      string          `json:"id"`
	Op      CommandOp       `json:"op"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// routePayload is the drawRoute payload. Bounds is a fit-viewport hint
// derived from the polyline's planar bounding box.
type routePayload struct {
	Points []entity.RoutePoint `json:"points"`
	Bounds boundsHint          `json:"bounds"`
}

type boundsHint struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

type roomMarkersPayload struct {
	Points []entity.RoomPoint `json:"points"`
}

type poisPayload struct {
	Pois []entity.PoiMarker `json:"pois"`
}

func newCommand(op CommandOp, payload any) (*Command, error) {
	cmd := &Command{ID: uuid.NewString(), Op: op}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		cmd.Payload = raw
	}

	return cmd, nil
}

func newRouteCommand(points []entity.RoutePoint) (*Command, error) {
	bound := entity.RouteBounds(points)

	return newCommand(OpDrawRoute, routePayload{
		Points: points,
		Bounds: boundsFromOrb(bound),
	})
}

func boundsFromOrb(b orb.Bound) boundsHint {
	return boundsHint{
		MinX: b.Min.X(),
		MinY: b.Min.Y(),
		MaxX: b.Max.X(),
		MaxY: b.Max.Y(),
	}
}

// EventKind enumerates the messages the renderer can emit back to the host.
type EventKind string

const (
	EventReady      EventKind = "webViewReady"
	EventRoomTap    EventKind = "roomTap"
	EventPoiTap     EventKind = "poiTap"
	EventRouteDrawn EventKind = "routeDrawn"
)

// Event is the serialized envelope of one renderer message.
type Event struct {
	Kind    EventKind       `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
