// Package platform provides the GLFW window glue for embedders and the
// demo. Only what a painter host needs: a GL context, framebuffer size,
// content scale, and a small event surface.
package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config for window creation.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Event is a window event delivered through the callback.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  glfw.Key
	Down bool
}

func (EventKey) isEvent() {}

// Window wraps a GLFW window with a current GL context.
type Window struct {
	w    *glfw.Window
	onEv func(Event)
}

// NewWindow creates the window and makes its GL context current. Must be
// called on the main thread.
func NewWindow(cfg Config, onEvent func(Event)) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &Window{w: win, onEv: onEvent}

	win.SetCloseCallback(func(*glfw.Window) { gw.emit(EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(EventResize{W: w, H: h})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		gw.emit(EventKey{Key: key, Down: action != glfw.Release})
	})

	return gw, nil
}

func (g *Window) emit(ev Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

func (g *Window) PollEvents()                     { glfw.PollEvents() }
func (g *Window) SwapBuffers()                    { g.w.SwapBuffers() }
func (g *Window) ShouldClose() bool               { return g.w.ShouldClose() }
func (g *Window) SetShouldClose(v bool)           { g.w.SetShouldClose(v) }
func (g *Window) FramebufferSize() (int, int)     { return g.w.GetFramebufferSize() }
func (g *Window) SetEventCallback(cb func(Event)) { g.onEv = cb }

// ContentScale reports the window's device pixel ratio.
func (g *Window) ContentScale() float32 {
	sx, _ := g.w.GetContentScale()
	return sx
}

// Destroy tears the window and GLFW down.
func (g *Window) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}
