// Package sdlbackend implements the gfx render target and texture factory
// on the SDL2 accelerated renderer via github.com/veandco/go-sdl2.
package sdlbackend

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/glazegl/glaze/gfx"
)

// Renderer adapts *sdl.Renderer to the painter's capability interfaces.
type Renderer struct {
	r           *sdl.Renderer
	hasGeometry bool
}

// New wraps an SDL renderer. SDL_RenderGeometry needs SDL >= 2.0.18; on
// older runtimes DrawGeometry reports gfx.ErrGeometryUnsupported.
func New(r *sdl.Renderer) *Renderer {
	var v sdl.Version
	sdl.GetVersion(&v)
	hasGeometry := v.Major > 2 || (v.Major == 2 && (v.Minor > 0 || v.Patch >= 18))
	return &Renderer{r: r, hasGeometry: hasGeometry}
}

// CreateTexture allocates a static RGBA8 texture with the custom blend
// mode attached. SDL only reports an uncomposable blend mode once it is
// attached to a concrete texture, which is why the painter cannot learn of
// the limitation any earlier.
func (b *Renderer) CreateTexture(width, height int, blend gfx.BlendMode) (gfx.Texture, error) {
	mode, err := composeBlendMode(blend)
	if err != nil {
		return nil, err
	}

	tex, err := b.r.CreateTexture(sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STATIC,
		int32(width), int32(height))
	if err != nil {
		return nil, fmt.Errorf("sdlbackend: create texture: %w", err)
	}
	if err := tex.SetBlendMode(mode); err != nil {
		_ = tex.Destroy()
		return nil, fmt.Errorf("%w: %v", gfx.ErrBlendModeUnsupported, err)
	}

	return &texture{tex: tex, size: image.Pt(width, height)}, nil
}

func (b *Renderer) SetClipRect(r image.Rectangle) error {
	rect := sdlRect(r)
	if err := b.r.SetClipRect(&rect); err != nil {
		return fmt.Errorf("sdlbackend: set clip rect: %w", err)
	}
	return nil
}

func (b *Renderer) ResetClipRect() error {
	if err := b.r.SetClipRect(nil); err != nil {
		return fmt.Errorf("sdlbackend: reset clip rect: %w", err)
	}
	return nil
}

// DrawGeometry converts the interleaved vertices to SDL's vertex format
// and issues one SDL_RenderGeometry call.
func (b *Renderer) DrawGeometry(tex gfx.Texture, vertices []gfx.Vertex, indices []uint32) error {
	if !b.hasGeometry {
		return gfx.ErrGeometryUnsupported
	}
	if len(vertices) == 0 || len(indices) == 0 {
		return nil
	}

	var sdlTex *sdl.Texture
	if tex != nil {
		t, ok := tex.(*texture)
		if !ok {
			return fmt.Errorf("sdlbackend: foreign texture %T", tex)
		}
		sdlTex = t.tex
	}

	verts := make([]sdl.Vertex, len(vertices))
	for i, v := range vertices {
		verts[i] = sdl.Vertex{
			Position: sdl.FPoint{X: v.Pos.X, Y: v.Pos.Y},
			Color:    sdl.Color{R: v.Color[0], G: v.Color[1], B: v.Color[2], A: v.Color[3]},
			TexCoord: sdl.FPoint{X: v.UV.X, Y: v.UV.Y},
		}
	}
	inds := make([]int32, len(indices))
	for i, n := range indices {
		inds[i] = int32(n)
	}

	if err := b.r.RenderGeometry(sdlTex, verts, inds); err != nil {
		return fmt.Errorf("sdlbackend: render geometry: %w", err)
	}
	return nil
}

func sdlRect(r image.Rectangle) sdl.Rect {
	return sdl.Rect{
		X: int32(r.Min.X),
		Y: int32(r.Min.Y),
		W: int32(r.Dx()),
		H: int32(r.Dy()),
	}
}

func composeBlendMode(mode gfx.BlendMode) (sdl.BlendMode, error) {
	srcC, err := blendFactor(mode.Color.Src)
	if err != nil {
		return 0, err
	}
	dstC, err := blendFactor(mode.Color.Dst)
	if err != nil {
		return 0, err
	}
	srcA, err := blendFactor(mode.Alpha.Src)
	if err != nil {
		return 0, err
	}
	dstA, err := blendFactor(mode.Alpha.Dst)
	if err != nil {
		return 0, err
	}
	opC, err := blendOp(mode.Color.Op)
	if err != nil {
		return 0, err
	}
	opA, err := blendOp(mode.Alpha.Op)
	if err != nil {
		return 0, err
	}
	return sdl.ComposeCustomBlendMode(srcC, dstC, opC, srcA, dstA, opA), nil
}

func blendFactor(f gfx.BlendFactor) (sdl.BlendFactor, error) {
	switch f {
	case gfx.BlendZero:
		return sdl.BLENDFACTOR_ZERO, nil
	case gfx.BlendOne:
		return sdl.BLENDFACTOR_ONE, nil
	case gfx.BlendSrcAlpha:
		return sdl.BLENDFACTOR_SRC_ALPHA, nil
	case gfx.BlendOneMinusSrcAlpha:
		return sdl.BLENDFACTOR_ONE_MINUS_SRC_ALPHA, nil
	case gfx.BlendDstAlpha:
		return sdl.BLENDFACTOR_DST_ALPHA, nil
	case gfx.BlendOneMinusDstAlpha:
		return sdl.BLENDFACTOR_ONE_MINUS_DST_ALPHA, nil
	default:
		return 0, fmt.Errorf("%w: factor %d", gfx.ErrBlendModeUnsupported, f)
	}
}

func blendOp(op gfx.BlendOp) (sdl.BlendOperation, error) {
	switch op {
	case gfx.BlendAdd:
		return sdl.BLENDOPERATION_ADD, nil
	case gfx.BlendSubtract:
		return sdl.BLENDOPERATION_SUBTRACT, nil
	case gfx.BlendReverseSubtract:
		return sdl.BLENDOPERATION_REV_SUBTRACT, nil
	default:
		return 0, fmt.Errorf("%w: operation %d", gfx.ErrBlendModeUnsupported, op)
	}
}

var _ gfx.RenderTarget = (*Renderer)(nil)
var _ gfx.TextureFactory = (*Renderer)(nil)
