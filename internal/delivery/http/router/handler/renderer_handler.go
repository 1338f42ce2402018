package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/render"

	"github.com/labstack/echo/v4"
)

// RendererHandler bridges the embedded renderer's HTTP surface: it accepts
// event envelopes from the renderer and streams command frames back to it.
type RendererHandler struct {
	bridge  service.RenderBridge
	surface *render.ChannelSurface
	logger  *slog.Logger
}

// NewRendererHandler is the constructor for RendererHandler, injected by Fx.
func NewRendererHandler(bridge service.RenderBridge, surface *render.ChannelSurface, logger *slog.Logger) *RendererHandler {
	return &RendererHandler{
		bridge:  bridge,
		surface: surface,
		logger:  logger,
	}
}

// Events accepts one raw event envelope from the renderer. Malformed
// envelopes are ignored by the bridge, so this always succeeds.
func (h *RendererHandler) Events(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unreadable event body")
	}

	h.bridge.HandleEvent(raw)

	return response.Success(c, http.StatusAccepted, nil, "Event accepted")
}

// Commands streams command frames to the renderer as server-sent events.
// The stream stays open until the renderer disconnects.
func (h *RendererHandler) Commands(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("renderer command stream closed")

			return nil
		case frame := <-h.surface.Frames():
			if _, err := fmt.Fprintf(w, "data: %s\n\n", frame); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
