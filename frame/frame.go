// Package frame models the per-frame output of an immediate-mode GUI
// engine: texture deltas (create/update/free requests keyed by logical
// texture identifiers) and an ordered list of clipped primitives. The
// painter package consumes these; nothing here touches a renderer.
package frame

import (
	"fmt"
	"image"

	"github.com/glazegl/glaze/gfx"
)

// TextureID identifies a logical texture minted by the GUI engine. It has
// no meaning beyond identity; the painter never invents or reuses one.
type TextureID uint64

// Image is a width x height block of straight-alpha RGBA8 pixels in
// row-major order, top-left origin.
type Image struct {
	Width, Height int
	Pixels        []gfx.Color
}

// RGBA flattens the pixel array to tightly packed RGBA8 bytes, row stride
// Width*4. It is the one place packed colors become raw bytes, and it
// checks the pixel count against the stated dimensions rather than trusting
// the producer.
func (m Image) RGBA() ([]byte, error) {
	if len(m.Pixels) != m.Width*m.Height {
		return nil, fmt.Errorf("frame: image %dx%d has %d texels", m.Width, m.Height, len(m.Pixels))
	}
	out := make([]byte, 0, len(m.Pixels)*4)
	for _, c := range m.Pixels {
		out = append(out, c[0], c[1], c[2], c[3])
	}
	return out, nil
}

// ImageDelta requests a write of Image into a texture's sub-region with
// top-left corner Pos. A nil Pos means the origin; for a texture that does
// not exist yet, the image dimensions also set the texture's full size.
type ImageDelta struct {
	Pos   *image.Point
	Image Image
}

// Origin returns the delta's target offset, defaulting to (0,0).
func (d ImageDelta) Origin() image.Point {
	if d.Pos == nil {
		return image.Point{}
	}
	return *d.Pos
}

// Region returns the target rectangle the delta writes to.
func (d ImageDelta) Region() image.Rectangle {
	o := d.Origin()
	return image.Rect(o.X, o.Y, o.X+d.Image.Width, o.Y+d.Image.Height)
}

// TextureSet pairs an identifier with the delta to apply to it.
type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta is one frame's texture changes. Set entries apply before
// any primitive draws; Free entries apply only after the last primitive,
// since a texture can be drawn one final time in the frame that frees it.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

// Empty reports whether the delta changes nothing.
func (d TexturesDelta) Empty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}
