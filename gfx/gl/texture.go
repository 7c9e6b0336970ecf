package glbackend

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/glazegl/glaze/gfx"
)

type texture struct {
	id    uint32
	size  image.Point
	blend gfx.BlendMode
}

// CreateTexture allocates an RGBA8 texture of fixed size. The blend mode is
// validated here so an uncomposable mode fails at creation, not first draw;
// GL applies blend state per draw, so the descriptor is stored and replayed
// by DrawGeometry.
func (r *Renderer) CreateTexture(width, height int, blend gfx.BlendMode) (gfx.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("glbackend: invalid texture size %dx%d", width, height)
	}
	if err := validateBlend(blend); err != nil {
		return nil, err
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	setFixedSampler()
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &texture{id: id, size: image.Pt(width, height), blend: blend}, nil
}

// Filtering and wrap are fixed; the GUI engine's texture options carry no
// mapping here.
func setFixedSampler() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (t *texture) Update(region image.Rectangle, pixels []byte, stride int) error {
	bounds := image.Rectangle{Max: t.size}
	if !region.In(bounds) {
		return fmt.Errorf("glbackend: update region %v outside texture %v", region, t.size)
	}
	if stride != region.Dx()*4 {
		return fmt.Errorf("glbackend: row stride %d, want %d", stride, region.Dx()*4)
	}
	if len(pixels) < stride*region.Dy() {
		return fmt.Errorf("glbackend: %d pixel bytes for %v", len(pixels), region)
	}

	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		int32(region.Min.X), int32(region.Min.Y),
		int32(region.Dx()), int32(region.Dy()),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (t *texture) Size() image.Point { return t.size }

func (t *texture) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
