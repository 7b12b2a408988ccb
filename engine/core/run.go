package core

import (
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
// Ownership is a strict chain: the engine owns the window, the window's
// renderer owns every texture/mesh/pipeline created through it. Teardown
// walks the chain once, renderer first.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Events:   NewDispatcher(),
		start:    time.Now(),
		calls:    make(chan call, 64),
	}
	eng.Input.Register(eng.Events)
	eng.Events.On(EventTypeResize, func(ev Event) bool {
		fw, fh := win.FramebufferSize()
		if fw >= 1 && fh >= 1 {
			rend.Resize(fw, fh)
		}
		return false
	})

	// Decode once (platform), dispatch once: table first, then layers
	// top-down, then the app fallback.
	win.SetEventCallback(func(ev Event) {
		if eng.Events.Dispatch(ev) {
			return
		}
		handled := false
		eng.Layers.ForEachReverse(func(l Layer) bool {
			handled = l.OnEvent(eng, ev)
			return handled
		})
		if !handled {
			app.OnEvent(eng, ev)
		}
	})

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		// Work posted from other goroutines runs between frames.
		eng.drainCalls()

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		// Render
		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		// Present
		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	log.Println("Engine exit")
	return nil
}
