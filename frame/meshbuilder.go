package frame

import "github.com/glazegl/glaze/gfx"

// AddQuad appends an axis-aligned textured rectangle to the mesh: rect in
// point coordinates, uv the normalized texture sub-rect, tint applied to
// all four vertices.
func (m *Mesh) AddQuad(rect, uv gfx.Rect, tint gfx.Color) {
	start := uint32(len(m.Vertices))

	// corners TL, TR, BL, BR
	m.Vertices = append(m.Vertices,
		gfx.Vertex{Pos: rect.Min, UV: uv.Min, Color: tint},
		gfx.Vertex{Pos: gfx.Point{X: rect.Max.X, Y: rect.Min.Y}, UV: gfx.Point{X: uv.Max.X, Y: uv.Min.Y}, Color: tint},
		gfx.Vertex{Pos: gfx.Point{X: rect.Min.X, Y: rect.Max.Y}, UV: gfx.Point{X: uv.Min.X, Y: uv.Max.Y}, Color: tint},
		gfx.Vertex{Pos: rect.Max, UV: uv.Max, Color: tint},
	)
	m.Indices = append(m.Indices,
		start+0, start+2, start+1,
		start+1, start+2, start+3,
	)
}

// QuadMesh builds a one-quad mesh over the full texture.
func QuadMesh(tex TextureID, rect gfx.Rect, tint gfx.Color) Mesh {
	m := Mesh{Texture: tex}
	m.AddQuad(rect, gfx.Rect{Max: gfx.Point{X: 1, Y: 1}}, tint)
	return m
}
