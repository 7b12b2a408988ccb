package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/grapengine/grape/engine/core"
)

// GLFWWindow implements core.Window. Native callbacks are decoded into the
// closed core.Event set exactly once, here; consumers only ever see typed
// events routed through the owning window's callback.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
	dead bool
}

// windows routes native callbacks back to their wrapper when more than one
// window is alive. Touched only on the main thread.
var windows = map[*glfw.Window]*GLFWWindow{}

// NewGLFWWindow opens a native window with a GL 3.2 core context.
// Must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
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
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win, onEv: onEvent}
	windows[win] = gw

	// Callbacks -> decode to core.Event, route by producing window.
	win.SetCloseCallback(func(nw *glfw.Window) {
		lookup(nw).emit(core.EventCloseRequested{})
	})
	win.SetFramebufferSizeCallback(func(nw *glfw.Window, w, h int) {
		lookup(nw).emit(core.EventResize{W: w, H: h})
	})
	win.SetFocusCallback(func(nw *glfw.Window, focused bool) {
		lookup(nw).emit(core.EventWindowFocus{Focused: focused})
	})
	win.SetCursorPosCallback(func(nw *glfw.Window, x, y float64) {
		lookup(nw).emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(nw *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := translateButton(btn)
		if !ok {
			return
		}
		lookup(nw).emit(core.EventMouseButton{Button: b, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetKeyCallback(func(nw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		lookup(nw).emit(core.EventKey{
			Key:    k,
			Down:   action != glfw.Release,
			Repeat: action == glfw.Repeat,
			Mods:   translateMods(mods),
		})
	})
	win.SetScrollCallback(func(nw *glfw.Window, xoff, yoff float64) {
		lookup(nw).emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

func lookup(nw *glfw.Window) *GLFWWindow {
	if gw, ok := windows[nw]; ok {
		return gw
	}
	return &GLFWWindow{dead: true}
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.dead || g.onEv == nil {
		return
	}
	g.onEv(ev)
}

// core.Window impl. Every method checks the live tag; a destroyed window
// degrades to no-ops and zero values.

func (g *GLFWWindow) PollEvents() {
	if g.dead {
		return
	}
	glfw.PollEvents()
}

func (g *GLFWWindow) SwapBuffers() {
	if g.dead {
		return
	}
	g.w.SwapBuffers()
}

func (g *GLFWWindow) ShouldClose() bool {
	if g.dead {
		return true
	}
	return g.w.ShouldClose()
}

func (g *GLFWWindow) RequestClose() {
	if g.dead {
		return
	}
	g.w.SetShouldClose(true)
}

func (g *GLFWWindow) FramebufferSize() (int, int) {
	if g.dead {
		return 0, 0
	}
	return g.w.GetFramebufferSize()
}

func (g *GLFWWindow) SetTitle(t string) {
	if g.dead {
		return
	}
	g.w.SetTitle(t)
}

func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// Destroy releases the native window exactly once. GLFW itself terminates
// when the last window goes away.
func (g *GLFWWindow) Destroy() {
	if g.dead {
		return
	}
	g.dead = true
	delete(windows, g.w)
	g.w.Destroy()
	if len(windows) == 0 {
		glfw.Terminate()
	}
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyEnter:
		return core.KeyEnter
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyRight:
		return core.KeyRight
	case glfw.KeyW:
		return core.KeyW
	case glfw.KeyA:
		return core.KeyA
	case glfw.KeyS:
		return core.KeyS
	case glfw.KeyD:
		return core.KeyD
	case glfw.KeyM:
		return core.KeyM
	case glfw.KeyP:
		return core.KeyP
	default:
		return core.KeyUnknown
	}
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	default:
		return 0, false
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
