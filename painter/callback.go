package painter

import (
	"image"

	"github.com/glazegl/glaze/gfx"
)

// CallbackInfo is the read-only context handed to a custom-draw callback.
type CallbackInfo struct {
	// Viewport is the callback primitive's target rectangle in points.
	Viewport gfx.Rect
	// ClipRect is the primitive's clip rectangle; it has already been
	// applied to the render target when the callback runs.
	ClipRect gfx.Rect
	// PixelsPerPoint is the device pixel ratio of the frame.
	PixelsPerPoint float32
	// ScreenSize is the full render target size in physical pixels.
	ScreenSize image.Point
}

// Callback wraps host code that issues renderer calls not expressible as a
// textured mesh, e.g. a native video overlay. The wrapped function must be
// safe to share across goroutines: a Callback may be registered on one
// goroutine and invoked on the one that owns the render target. Invocation
// itself is synchronous, inline in primitive order, and never concurrent.
type Callback struct {
	fn func(CallbackInfo, *Painter, gfx.RenderTarget)
}

// NewCallback wraps fn for use as a frame.Callback payload.
func NewCallback(fn func(info CallbackInfo, p *Painter, target gfx.RenderTarget)) *Callback {
	return &Callback{fn: fn}
}
