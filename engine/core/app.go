package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // events not consumed by the dispatcher or a layer
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App. All fields are mutated only on
// the owning (main) thread; other goroutines reach it via Post/Send.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Events   *Dispatcher
	Layers   LayerStack

	start time.Time
	calls chan call
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// PushLayer attaches l and adds it to the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// PopLayer removes the top layer and detaches it.
func (e *Engine) PopLayer() {
	if l, ok := e.Layers.Pop(); ok {
		l.OnDetach(e)
	}
}

// Window abstraction. Destroy releases the native window; calling it twice
// is a no-op, and all other methods degrade to no-ops afterwards.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}
