// Demo host for the glaze painter: replays hand-built frames (the kind a
// GUI engine's tessellator would emit) onto the GL backend. Pass an image
// path to see it uploaded through a texture delta.
package main

import (
	"image"
	"log"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glazegl/glaze/assets"
	"github.com/glazegl/glaze/frame"
	"github.com/glazegl/glaze/gfx"
	glbackend "github.com/glazegl/glaze/gfx/gl"
	"github.com/glazegl/glaze/painter"
	"github.com/glazegl/glaze/platform"
)

const (
	texChecker frame.TextureID = 1
	texImage   frame.TextureID = 2
)

func main() {
	win, err := platform.NewWindow(platform.Config{
		Title:  "glaze demo",
		Width:  800,
		Height: 600,
		VSync:  true,
	}, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()

	win.SetEventCallback(func(ev platform.Event) {
		switch e := ev.(type) {
		case platform.EventCloseRequested:
			win.SetShouldClose(true)
		case platform.EventKey:
			if e.Key == glfw.KeyEscape && e.Down {
				win.SetShouldClose(true)
			}
		}
	})

	rend, err := glbackend.New()
	if err != nil {
		log.Fatal(err)
	}
	defer rend.Shutdown()

	p := painter.New(rend)
	defer p.Destroy()

	// First frame's texture delta: a procedural 2x2 checker, plus an
	// image file if one was given.
	delta := frame.TexturesDelta{
		Set: []frame.TextureSet{{ID: texChecker, Delta: frame.ImageDelta{Image: checker()}}},
	}
	haveImage := false
	if len(os.Args) > 1 {
		img, err := assets.LoadImage(os.Args[1], 512)
		if err != nil {
			log.Fatal(err)
		}
		delta.Set = append(delta.Set, frame.TextureSet{ID: texImage, Delta: frame.ImageDelta{Image: img}})
		haveImage = true
		log.Printf("loaded %s (%dx%d)", os.Args[1], img.Width, img.Height)
	}

	for !win.ShouldClose() {
		win.PollEvents()

		w, h := win.FramebufferSize()
		scale := win.ContentScale()
		rend.Resize(w, h)
		rend.SetPixelsPerPoint(scale)
		rend.Clear(0.08, 0.10, 0.12, 1)

		logicalW := float32(w) / scale
		logicalH := float32(h) / scale
		screen := gfx.Rect{Max: gfx.Point{X: logicalW, Y: logicalH}}

		prims := []frame.ClippedPrimitive{
			{
				ClipRect: screen,
				Prim: frame.QuadMesh(texChecker,
					gfx.Rect{Min: gfx.Point{X: 20, Y: 20}, Max: gfx.Point{X: 220, Y: 220}},
					gfx.Color{255, 255, 255, 255}),
			},
			{
				// Clipped on purpose: only the left half survives.
				ClipRect: gfx.Rect{Min: gfx.Point{X: 240, Y: 20}, Max: gfx.Point{X: 340, Y: 220}},
				Prim: frame.QuadMesh(texChecker,
					gfx.Rect{Min: gfx.Point{X: 240, Y: 20}, Max: gfx.Point{X: 440, Y: 220}},
					gfx.Color{255, 160, 160, 255}),
			},
			{
				ClipRect: screen,
				Prim: frame.Callback{
					Rect: gfx.Rect{Min: gfx.Point{X: 20, Y: 240}, Max: gfx.Point{X: 220, Y: 300}},
					Fn:   painter.NewCallback(drawOverlay),
				},
			},
		}
		if haveImage {
			prims = append(prims, frame.ClippedPrimitive{
				ClipRect: screen,
				Prim: frame.QuadMesh(texImage,
					gfx.Rect{Min: gfx.Point{X: 20, Y: 320}, Max: gfx.Point{X: 276, Y: 576}},
					gfx.Color{255, 255, 255, 255}),
			})
		}

		err := p.Paint(rend, image.Pt(w, h), scale, prims, delta)
		if err != nil {
			log.Fatal(err)
		}
		delta = frame.TexturesDelta{}

		win.SwapBuffers()
	}
}

// drawOverlay is the custom-draw escape hatch: it talks to the render
// target directly, bypassing the mesh path.
func drawOverlay(info painter.CallbackInfo, _ *painter.Painter, target gfx.RenderTarget) {
	var m frame.Mesh
	// Vertex colors are premultiplied alpha: RGB carries the alpha factor.
	m.AddQuad(info.Viewport, gfx.Rect{}, gfx.Color{63, 125, 200, 200})
	if err := target.DrawGeometry(nil, m.Vertices, m.Indices); err != nil {
		log.Printf("overlay draw: %v", err)
	}
}

func checker() frame.Image {
	dark := gfx.Color{40, 40, 40, 255}
	light := gfx.Color{230, 230, 230, 255}
	return frame.Image{
		Width:  2,
		Height: 2,
		Pixels: []gfx.Color{dark, light, light, dark},
	}
}
