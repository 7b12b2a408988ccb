package scene

import "sync/atomic"

// Group fans Update/Render out to an ordered child list. The list is
// copy-on-write behind an atomic pointer: writers swap in a fresh slice,
// readers iterate the snapshot they grabbed. A reader mid-pass never sees
// a concurrent Add/Remove; it may miss children added after its snapshot.
type Group struct {
	children atomic.Pointer[[]Node]
}

func NewGroup(children ...Node) *Group {
	g := &Group{}
	if len(children) > 0 {
		list := make([]Node, len(children))
		copy(list, children)
		g.children.Store(&list)
	}
	return g
}

func (g *Group) snapshot() []Node {
	if p := g.children.Load(); p != nil {
		return *p
	}
	return nil
}

// Add appends n, keeping insertion order. Lock-free.
func (g *Group) Add(n Node) {
	for {
		old := g.children.Load()
		var next []Node
		if old == nil {
			next = []Node{n}
		} else {
			next = make([]Node, len(*old)+1)
			copy(next, *old)
			next[len(*old)] = n
		}
		if g.children.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Remove deletes the first occurrence of n; reports whether it was found.
func (g *Group) Remove(n Node) bool {
	for {
		old := g.children.Load()
		if old == nil {
			return false
		}
		idx := -1
		for i, c := range *old {
			if c == n {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}
		next := make([]Node, 0, len(*old)-1)
		next = append(next, (*old)[:idx]...)
		next = append(next, (*old)[idx+1:]...)
		if g.children.CompareAndSwap(old, &next) {
			return true
		}
	}
}

func (g *Group) Len() int { return len(g.snapshot()) }

// Update visits children in insertion order and ORs their results. The
// cancel flag is checked once per child.
func (g *Group) Update(ctx *UpdateContext) bool {
	changed := false
	for _, c := range g.snapshot() {
		if ctx.Cancelled() {
			break
		}
		if c.Update(ctx) {
			changed = true
		}
	}
	return changed
}

// Render visits children in insertion order. No aggregation.
func (g *Group) Render(t *RenderTarget) {
	for _, c := range g.snapshot() {
		c.Render(t)
	}
}
