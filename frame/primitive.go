package frame

import "github.com/glazegl/glaze/gfx"

// Primitive is one drawable unit: a Mesh or a Callback.
type Primitive interface{ isPrimitive() }

// Mesh is a textured triangle list in the tessellator's interleaved vertex
// format. Indices index into Vertices in groups of three.
type Mesh struct {
	Texture  TextureID
	Vertices []gfx.Vertex
	Indices  []uint32
}

func (Mesh) isPrimitive() {}

// Callback is an opaque custom-draw unit positioned in the primitive
// stream. Fn carries a type-erased payload; a painter invokes it only when
// the payload is of that painter's own callback type, and silently skips
// payloads belonging to other rendering backends.
type Callback struct {
	Rect gfx.Rect
	Fn   any
}

func (Callback) isPrimitive() {}

// ClippedPrimitive pairs a primitive with its scissor rectangle. Slice
// order is draw order: later primitives occlude earlier ones and each
// carries its own clip.
type ClippedPrimitive struct {
	ClipRect gfx.Rect
	Prim     Primitive
}
