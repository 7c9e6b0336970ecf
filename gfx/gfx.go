// Package gfx defines the boundary between the painter and an accelerated
// 2D renderer: small value types for geometry, color and blending, plus the
// capability interfaces a rendering backend implements. Backends live in
// the subpackages (gl, sdl); the painter only ever talks to the interfaces.
package gfx

import (
	"errors"
	"image"
)

// A Point is a two dimensional point. The coordinate space has the origin
// in the top left corner with the axes extending right and down.
type Point struct {
	X, Y float32
}

// A Rect is a float32 axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min, Max Point
}

// Size returns r's width and height.
func (r Rect) Size() Point {
	return Point{X: r.Max.X - r.Min.X, Y: r.Max.Y - r.Min.Y}
}

// Scissor converts r to an integer scissor rectangle, staying in the
// point space of r: top-left floored, size taken from the extent.
func (r Rect) Scissor() image.Rectangle {
	x, y := int(r.Min.X), int(r.Min.Y)
	sz := r.Size()
	return image.Rect(x, y, x+int(sz.X), y+int(sz.Y))
}

// Color is one packed straight-alpha pixel or vertex color, byte order
// R, G, B, A.
type Color [4]uint8

// Vertex is one tessellator output vertex. The painter hands vertex slices
// to backends as-is; Pos is the geometry coordinate, Color the per-vertex
// tint and UV the normalized texture coordinate.
type Vertex struct {
	Pos   Point
	UV    Point
	Color Color
}

// VertexStride is the byte size of one interleaved Vertex. Backends that
// upload vertex memory directly key their attribute offsets to this layout.
const VertexStride = 20

// Errors a backend reports for capability gaps. Backends may wrap these;
// callers match with errors.Is.
var (
	// ErrGeometryUnsupported means the renderer cannot draw textured
	// indexed triangles at all. Fatal to the integration; only
	// discoverable on the first draw.
	ErrGeometryUnsupported = errors.New("gfx: indexed geometry rendering not supported")

	// ErrBlendModeUnsupported means the renderer rejected the custom
	// blend composition, typically when attaching it to a texture.
	ErrBlendModeUnsupported = errors.New("gfx: custom blend mode not supported")
)

// TextureFactory allocates textures against the current render target.
type TextureFactory interface {
	// CreateTexture allocates a width x height RGBA8 texture with the
	// given blend mode attached, sized once for its whole lifetime.
	// Content is undefined until the first Update.
	CreateTexture(width, height int, blend BlendMode) (Texture, error)
}

// Texture is a renderer-owned GPU texture.
type Texture interface {
	// Update writes tightly packed RGBA8 pixels into region. stride is
	// the byte length of one source row.
	Update(region image.Rectangle, pixels []byte, stride int) error

	// Size reports the fixed texture dimensions.
	Size() image.Point

	// Destroy releases the texture. The texture must not be used after.
	Destroy()
}

// RenderTarget is the drawing surface for one frame.
type RenderTarget interface {
	// SetClipRect restricts subsequent draws to r, given in the same
	// point space as vertex positions. Backends map it to device
	// pixels themselves.
	SetClipRect(r image.Rectangle) error

	// ResetClipRect removes the clip rectangle.
	ResetClipRect() error

	// DrawGeometry draws the indexed triangle list described by indices
	// over vertices, sampling tex. tex may be nil for untextured
	// geometry.
	DrawGeometry(tex Texture, vertices []Vertex, indices []uint32) error
}
