package core

// Cross-thread marshaling. The run loop owns one OS thread; goroutines hand
// it work with Post (fire-and-forget) or Send (blocks until executed).
// Posted closures run between frames, in submission order.

type call struct {
	f    func()
	done chan struct{}
}

// Post queues f for execution on the owning thread and returns immediately.
func (e *Engine) Post(f func()) {
	e.calls <- call{f: f}
}

// Send queues f and blocks until it has run. Must not be called from the
// owning thread itself (the queue only drains between frames).
func (e *Engine) Send(f func()) {
	done := make(chan struct{})
	e.calls <- call{f: f, done: done}
	<-done
}

// drainCalls runs queued closures until the queue is momentarily empty.
func (e *Engine) drainCalls() {
	for {
		select {
		case c := <-e.calls:
			c.f()
			if c.done != nil {
				close(c.done)
			}
		default:
			return
		}
	}
}
