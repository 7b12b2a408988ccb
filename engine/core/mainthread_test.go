package core

import (
	"testing"
	"time"
)

func testEngine() *Engine {
	return &Engine{calls: make(chan call, 64)}
}

// TestPostRunsOnDrain: posted closures execute in submission order when
// the owning thread drains the queue.
func TestPostRunsOnDrain(t *testing.T) {
	e := testEngine()
	var order []int
	e.Post(func() { order = append(order, 1) })
	e.Post(func() { order = append(order, 2) })

	if len(order) != 0 {
		t.Fatal("posted work ran before drain")
	}
	e.drainCalls()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

// TestSendBlocksUntilExecuted: Send returns only after the closure has run
// on the draining side.
func TestSendBlocksUntilExecuted(t *testing.T) {
	e := testEngine()
	ran := false
	returned := make(chan struct{})

	go func() {
		e.Send(func() { ran = true })
		close(returned)
	}()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-returned:
			if !ran {
				t.Fatal("Send returned before the closure ran")
			}
			return
		case <-deadline:
			t.Fatal("Send never returned")
		default:
			e.drainCalls()
		}
	}
}

// TestLayerStackOrder: ForEach walks bottom-up, ForEachReverse top-down
// with early stop.
func TestLayerStackOrder(t *testing.T) {
	var ls LayerStack
	a, b, c := &nopLayer{id: 0}, &nopLayer{id: 1}, &nopLayer{id: 2}
	ls.Push(a)
	ls.Push(b)
	ls.Push(c)

	var fwd []int
	ls.ForEach(func(l Layer) { fwd = append(fwd, l.(*nopLayer).id) })
	if len(fwd) != 3 || fwd[0] != 0 || fwd[2] != 2 {
		t.Errorf("forward order = %v, want [0 1 2]", fwd)
	}

	var rev []int
	ls.ForEachReverse(func(l Layer) bool {
		rev = append(rev, l.(*nopLayer).id)
		return l.(*nopLayer).id == 1 // stop mid-stack
	})
	if len(rev) != 2 || rev[0] != 2 || rev[1] != 1 {
		t.Errorf("reverse order = %v, want [2 1]", rev)
	}

	if l, ok := ls.Pop(); !ok || l.(*nopLayer).id != 2 {
		t.Error("pop did not return the top layer")
	}
	if ls.Len() != 2 {
		t.Errorf("len after pop = %d, want 2", ls.Len())
	}
}

type nopLayer struct{ id int }

func (*nopLayer) OnAttach(*Engine)            {}
func (*nopLayer) OnDetach(*Engine)            {}
func (*nopLayer) OnUpdate(*Engine, float64)   {}
func (*nopLayer) OnRender(*Engine, float64)   {}
func (*nopLayer) OnEvent(*Engine, Event) bool { return false }
