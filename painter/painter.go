// Package painter replays immediate-mode GUI frame output onto an
// accelerated 2D renderer. Each Paint call applies the frame's texture
// delta around an in-order dispatch of clipped primitives: set entries
// land before the first draw, free entries after the last, so a texture
// created or freed within a frame is visible to every primitive of that
// frame that references it.
package painter

import (
	"fmt"
	"image"

	"github.com/glazegl/glaze/frame"
	"github.com/glazegl/glaze/gfx"
)

// Painter owns the texture table for one GUI engine instance. It borrows
// the render target per Paint call and keeps only the factory it allocates
// textures from. Not safe for concurrent use; Paint is meant to run once
// per frame on the goroutine that owns the render target.
type Painter struct {
	cache *textureCache
}

// New creates a painter allocating textures from factory. The custom
// premultiplied-alpha blend mode is composed here, once, and attached to
// every texture the painter creates.
func New(factory gfx.TextureFactory) *Painter {
	return &Painter{cache: newTextureCache(factory, gfx.PremultipliedAlphaBlend())}
}

// Texture returns the renderer texture held for id, if any. Callbacks use
// this for nested lookups; the caller must not destroy the texture.
func (p *Painter) Texture(id frame.TextureID) (gfx.Texture, bool) {
	return p.cache.get(id)
}

// BlendMode returns the blend descriptor attached to the painter's
// textures.
func (p *Painter) BlendMode() gfx.BlendMode {
	return p.cache.blend
}

// Destroy releases every texture the painter holds. The painter is empty
// but usable afterwards; a subsequent set delta recreates textures as
// needed.
func (p *Painter) Destroy() {
	p.cache.clear()
}

// Paint draws one frame: texture set entries, then every primitive in list
// order, then texture frees. screenSize is the render target size in
// physical pixels and pixelsPerPoint its device pixel ratio; both are
// passed through to callbacks.
//
// The first failure aborts the call. Primitives drawn before the failure
// stay on the target; whether a partial frame is presented is the caller's
// choice.
func (p *Painter) Paint(
	target gfx.RenderTarget,
	screenSize image.Point,
	pixelsPerPoint float32,
	prims []frame.ClippedPrimitive,
	delta frame.TexturesDelta,
) error {
	for _, set := range delta.Set {
		if err := p.cache.upsert(set.ID, set.Delta); err != nil {
			return err
		}
	}

	for _, cp := range prims {
		if err := target.SetClipRect(cp.ClipRect.Scissor()); err != nil {
			return fmt.Errorf("painter: set clip rect: %w", err)
		}

		// The marker methods use value receivers, so both a primitive
		// and a pointer to one satisfy frame.Primitive; dispatch on
		// either form.
		switch prim := cp.Prim.(type) {
		case frame.Mesh:
			if err := p.drawMesh(target, prim); err != nil {
				return err
			}
		case *frame.Mesh:
			if err := p.drawMesh(target, *prim); err != nil {
				return err
			}
		case frame.Callback:
			p.runCallback(target, prim, cp.ClipRect, screenSize, pixelsPerPoint)
		case *frame.Callback:
			p.runCallback(target, *prim, cp.ClipRect, screenSize, pixelsPerPoint)
		}
	}

	if err := target.ResetClipRect(); err != nil {
		return fmt.Errorf("painter: reset clip rect: %w", err)
	}

	for _, id := range delta.Free {
		if !p.cache.remove(id) {
			return &FreeUnknownTextureError{ID: id}
		}
	}

	return nil
}

func (p *Painter) drawMesh(target gfx.RenderTarget, mesh frame.Mesh) error {
	tex, ok := p.cache.get(mesh.Texture)
	if !ok {
		return &DrawUnknownTextureError{ID: mesh.Texture}
	}
	if err := target.DrawGeometry(tex, mesh.Vertices, mesh.Indices); err != nil {
		return fmt.Errorf("painter: draw mesh: %w", err)
	}
	return nil
}

func (p *Painter) runCallback(
	target gfx.RenderTarget,
	prim frame.Callback,
	clip gfx.Rect,
	screenSize image.Point,
	pixelsPerPoint float32,
) {
	cb, ok := prim.Fn.(*Callback)
	if !ok {
		// The payload belongs to another rendering backend; not ours
		// to run, not an error.
		return
	}
	cb.fn(CallbackInfo{
		Viewport:       prim.Rect,
		ClipRect:       clip,
		PixelsPerPoint: pixelsPerPoint,
		ScreenSize:     screenSize,
	}, p, target)
}
