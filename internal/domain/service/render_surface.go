package service

import "context"

// RenderSurface is the one-way transport into the sandboxed rendering
// context. The surface executes independently of the host; the only way in
// is serialized frames, the only way out is the event envelopes handled by
// the RenderBridge.
type RenderSurface interface {
	// LoadContent hands a new floor-plan document to the surface.
	LoadContent(ctx context.Context, content []byte) error

	// PostCommand injects one serialized draw/clear command.
	PostCommand(ctx context.Context, command []byte) error
}
