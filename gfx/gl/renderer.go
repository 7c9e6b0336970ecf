// Package glbackend implements the gfx render target and texture factory
// on OpenGL 3.3 core. One Renderer serves both roles for a window whose GL
// context is current on the calling goroutine.
package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/glazegl/glaze/gfx"
)

type Renderer struct {
	program  uint32
	vao      uint32
	vbo      uint32
	ebo      uint32
	locScale int32
	white    uint32 // 1x1 white texture for untextured geometry

	fbWidth, fbHeight int
	pixelsPerPoint    float32
}

// New compiles the painter pipeline. The GL context must be current.
func New() (*Renderer, error) {
	r := &Renderer{pixelsPerPoint: 1}

	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	r.locScale = gl.GetUniformLocation(r.program, gl.Str("uScreenSize\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor;
	const stride = gfx.VertexStride
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(8)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Pointer(uintptr(16)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	gl.GenTextures(1, &r.white)
	gl.BindTexture(gl.TEXTURE_2D, r.white)
	whitePix := []uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(whitePix))
	setFixedSampler()
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return r, nil
}

func (r *Renderer) Shutdown() {
	if r.white != 0 {
		gl.DeleteTextures(1, &r.white)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize records the framebuffer size. Needed for the viewport, the
// point-space projection and the scissor Y flip.
func (r *Renderer) Resize(w, h int) {
	r.fbWidth, r.fbHeight = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

// SetPixelsPerPoint sets the device pixel ratio used to map point-space
// vertex positions to framebuffer pixels.
func (r *Renderer) SetPixelsPerPoint(pp float32) {
	if pp > 0 {
		r.pixelsPerPoint = pp
	}
}

func (r *Renderer) Clear(rf, gf, bf, af float32) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

var _ gfx.RenderTarget = (*Renderer)(nil)
var _ gfx.TextureFactory = (*Renderer)(nil)
