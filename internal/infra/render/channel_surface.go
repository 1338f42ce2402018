package render

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"wayfinder/config"
	"wayfinder/internal/domain/service"

	"go.uber.org/fx"
)

// SurfaceParams holds dependencies for the channel surface, injected by Fx.
type SurfaceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// ChannelSurface is the production RenderSurface: a buffered one-way frame
// channel drained by the delivery layer, which streams the frames to the
// embedded renderer. When the renderer falls behind, the oldest frame is
// discarded so the stream converges on the latest desired state.
type ChannelSurface struct {
	logger *slog.Logger

	mu     sync.Mutex
	frames chan []byte
}

// NewChannelSurface creates the surface with the configured buffer size.
func NewChannelSurface(params SurfaceParams) *ChannelSurface {
	return &ChannelSurface{
		logger: params.Logger,
		frames: make(chan []byte, params.Config.Renderer.CommandBuffer),
	}
}

// AsRenderSurface adapts the concrete surface for injection as the
// service.RenderSurface dependency of the bridge.
func AsRenderSurface(s *ChannelSurface) service.RenderSurface {
	return s
}

// Frames exposes the outbound frame stream for the delivery layer.
func (s *ChannelSurface) Frames() <-chan []byte {
	return s.frames
}

// LoadContent wraps a floor-plan document in a loadPlan frame.
func (s *ChannelSurface) LoadContent(ctx context.Context, content []byte) error {
	cmd, err := newCommand(OpLoadPlan, map[string]string{"content": string(content)})
	if err != nil {
		return err
	}
	raw, err := json.Marshal(cmd)
	if err != nil {
		return err
	}
	s.push(raw)

	return nil
}

// PostCommand queues one serialized command frame.
func (s *ChannelSurface) PostCommand(ctx context.Context, command []byte) error {
	s.push(command)

	return nil
}

// push enqueues a frame, discarding the oldest one when the buffer is full.
func (s *ChannelSurface) push(frame []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		select {
		case s.frames <- frame:
			return
		default:
		}

		select {
		case dropped := <-s.frames:
			s.logger.Warn("renderer frame buffer full, dropping oldest frame",
				slog.Int("bytes", len(dropped)),
			)
		default:
		}
	}
}
