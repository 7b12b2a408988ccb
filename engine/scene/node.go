// Package scene is a retained-mode scene graph: props (leaf nodes),
// groups (fan-out containers) and stacks (panel layout) all implement the
// same two-operation Node interface and nest arbitrarily.
package scene

import (
	"sync/atomic"
	"time"

	"github.com/grapengine/grape/engine/core"
	"github.com/grapengine/grape/engine/gfx/renderer2d"
	"github.com/grapengine/grape/engine/text"
)

// Node is a scene element. Update reports whether anything visible
// changed; Render draws into the target. Both run on the owning thread.
type Node interface {
	Update(ctx *UpdateContext) bool
	Render(t *RenderTarget)
}

// UpdateContext carries per-pass state down the tree. Cancel is a single
// cooperative flag; containers check it once per child.
type UpdateContext struct {
	Now    time.Time
	Input  *core.Input
	cancel atomic.Bool
}

func NewUpdateContext(now time.Time, in *core.Input) *UpdateContext {
	return &UpdateContext{Now: now, Input: in}
}

// Cancel asks the current pass to stop between children. Safe to call from
// any goroutine.
func (c *UpdateContext) Cancel() { c.cancel.Store(true) }

func (c *UpdateContext) Cancelled() bool { return c.cancel.Load() }

// Rect is an axis-aligned pixel rectangle (top-left origin, Y down).
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// RenderTarget bundles what nodes draw with. Bounds is the rectangle the
// current node was laid out into; stacks narrow it per panel.
type RenderTarget struct {
	R2D    *renderer2d.Renderer2D
	Font   *text.Font // may be nil; text nodes must tolerate that
	Bounds Rect
}
