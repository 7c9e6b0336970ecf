package glbackend

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/glazegl/glaze/gfx"
)

// SetClipRect enables scissoring to rect. Clip rects arrive in the same
// point space as vertex positions, while glScissor wants framebuffer
// pixels, so the rectangle is scaled by the device pixel ratio and then
// flipped against the framebuffer height (GL scissor origin is bottom
// left).
func (r *Renderer) SetClipRect(rect image.Rectangle) error {
	x, y, w, h := scissorPixels(rect, r.pixelsPerPoint, r.fbHeight)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x, y, w, h)
	return nil
}

func scissorPixels(rect image.Rectangle, scale float32, fbHeight int) (x, y, w, h int32) {
	x0 := roundScaled(rect.Min.X, scale)
	y0 := roundScaled(rect.Min.Y, scale)
	x1 := roundScaled(rect.Max.X, scale)
	y1 := roundScaled(rect.Max.Y, scale)
	return int32(x0), int32(fbHeight - y1), int32(x1 - x0), int32(y1 - y0)
}

func roundScaled(v int, scale float32) int {
	return int(math.Round(float64(v) * float64(scale)))
}

func (r *Renderer) ResetClipRect() error {
	gl.Disable(gl.SCISSOR_TEST)
	return nil
}

// DrawGeometry streams the interleaved vertices and draws the indexed
// triangle list, sampling tex (or a 1x1 white texture when tex is nil).
func (r *Renderer) DrawGeometry(tex gfx.Texture, vertices []gfx.Vertex, indices []uint32) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil
	}

	texID := r.white
	blend := gfx.PremultipliedAlphaBlend()
	if tex != nil {
		t, ok := tex.(*texture)
		if !ok {
			return fmt.Errorf("glbackend: foreign texture %T", tex)
		}
		texID = t.id
		blend = t.blend
	}
	if err := applyBlend(blend); err != nil {
		return err
	}

	gl.UseProgram(r.program)
	// Vertex positions are in points; project through the logical size.
	gl.Uniform2f(r.locScale,
		float32(r.fbWidth)/r.pixelsPerPoint,
		float32(r.fbHeight)/r.pixelsPerPoint,
	)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*gfx.VertexStride, gl.Ptr(vertices), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STREAM_DRAW)

	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, nil)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	return nil
}

// validateBlend checks the descriptor maps to GL without touching state.
func validateBlend(mode gfx.BlendMode) error {
	for _, f := range [...]gfx.BlendFactor{mode.Color.Src, mode.Color.Dst, mode.Alpha.Src, mode.Alpha.Dst} {
		if _, err := blendFactor(f); err != nil {
			return err
		}
	}
	for _, op := range [...]gfx.BlendOp{mode.Color.Op, mode.Alpha.Op} {
		if _, err := blendOp(op); err != nil {
			return err
		}
	}
	return nil
}

func applyBlend(mode gfx.BlendMode) error {
	srcC, err := blendFactor(mode.Color.Src)
	if err != nil {
		return err
	}
	dstC, err := blendFactor(mode.Color.Dst)
	if err != nil {
		return err
	}
	srcA, err := blendFactor(mode.Alpha.Src)
	if err != nil {
		return err
	}
	dstA, err := blendFactor(mode.Alpha.Dst)
	if err != nil {
		return err
	}
	opC, err := blendOp(mode.Color.Op)
	if err != nil {
		return err
	}
	opA, err := blendOp(mode.Alpha.Op)
	if err != nil {
		return err
	}

	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(srcC, dstC, srcA, dstA)
	gl.BlendEquationSeparate(opC, opA)
	return nil
}

func blendFactor(f gfx.BlendFactor) (uint32, error) {
	switch f {
	case gfx.BlendZero:
		return gl.ZERO, nil
	case gfx.BlendOne:
		return gl.ONE, nil
	case gfx.BlendSrcAlpha:
		return gl.SRC_ALPHA, nil
	case gfx.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA, nil
	case gfx.BlendDstAlpha:
		return gl.DST_ALPHA, nil
	case gfx.BlendOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA, nil
	default:
		return 0, fmt.Errorf("%w: factor %d", gfx.ErrBlendModeUnsupported, f)
	}
}

func blendOp(op gfx.BlendOp) (uint32, error) {
	switch op {
	case gfx.BlendAdd:
		return gl.FUNC_ADD, nil
	case gfx.BlendSubtract:
		return gl.FUNC_SUBTRACT, nil
	case gfx.BlendReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT, nil
	default:
		return 0, fmt.Errorf("%w: operation %d", gfx.ErrBlendModeUnsupported, op)
	}
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
layout(location=2) in vec4 aColor;
uniform vec2 uScreenSize;
out vec4 vColor;
out vec2 vUV;
void main() {
    vColor = aColor;
    vUV = aUV;
    gl_Position = vec4(
        2.0 * aPos.x / uScreenSize.x - 1.0,
        1.0 - 2.0 * aPos.y / uScreenSize.y,
        0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
uniform sampler2D uTex;
out vec4 FragColor;
void main() {
    FragColor = vColor * texture(uTex, vUV);
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
