package sdlbackend

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/glazegl/glaze/gfx"
)

type texture struct {
	tex  *sdl.Texture
	size image.Point
}

func (t *texture) Update(region image.Rectangle, pixels []byte, stride int) error {
	bounds := image.Rectangle{Max: t.size}
	if !region.In(bounds) {
		return fmt.Errorf("sdlbackend: update region %v outside texture %v", region, t.size)
	}
	rect := sdlRect(region)
	if err := t.tex.Update(&rect, pixels, stride); err != nil {
		return fmt.Errorf("sdlbackend: update texture: %w", err)
	}
	return nil
}

func (t *texture) Size() image.Point { return t.size }

func (t *texture) Destroy() {
	if t.tex != nil {
		_ = t.tex.Destroy()
		t.tex = nil
	}
}

var _ gfx.Texture = (*texture)(nil)
