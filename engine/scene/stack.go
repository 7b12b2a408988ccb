package scene

// Stack layout: distributes a bounding rectangle among ordered panels
// along one axis. Fixed panels reserve their pixels first; proportional
// panels split what remains by weight. The cross axis always spans the
// full parent extent.

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

type SizeMode int

const (
	SizeFixed SizeMode = iota
	SizeProportional
)

// Size tags one axis of a panel. Value is pixels for SizeFixed, a weight
// for SizeProportional.
type Size struct {
	Mode  SizeMode
	Value float32
}

func Fixed(px float32) Size       { return Size{Mode: SizeFixed, Value: px} }
func Proportional(w float32) Size { return Size{Mode: SizeProportional, Value: w} }

// Panel wraps a node with sizing for stack layout. Its bounds are written
// only by the owning stack's layout pass.
type Panel struct {
	Content Node
	Width   Size
	Height  Size

	bounds Rect
}

func NewPanel(content Node, width, height Size) *Panel {
	return &Panel{Content: content, Width: width, Height: height}
}

// Bounds returns the rectangle assigned by the last layout pass.
func (p *Panel) Bounds() Rect { return p.bounds }

func (p *Panel) Update(ctx *UpdateContext) bool {
	if p.Content == nil {
		return false
	}
	return p.Content.Update(ctx)
}

// Render narrows the target bounds to the panel's own before descending.
func (p *Panel) Render(t *RenderTarget) {
	if p.Content == nil {
		return
	}
	sub := *t
	sub.Bounds = p.bounds
	p.Content.Render(&sub)
}

// Stack lays panels out along Axis inside Bounds, then fans Update/Render
// out to them in order.
type Stack struct {
	Axis   Axis
	Bounds Rect
	panels []*Panel
}

func NewStack(axis Axis, bounds Rect) *Stack {
	return &Stack{Axis: axis, Bounds: bounds}
}

func (s *Stack) Append(p *Panel)  { s.panels = append(s.panels, p) }
func (s *Stack) Panels() []*Panel { return s.panels }

// Layout assigns every panel's bounds, partitioning the given rectangle
// along the stack axis. Fixed sizes win over proportional ones; when they
// overflow the parent, proportional extents clamp to zero and the fixed
// tail overflows rather than going negative. The last proportional panel
// absorbs float rounding so the partition closes at the parent's edge.
// Never fails; degenerate (zero-size) output is acceptable.
func (s *Stack) Layout(bounds Rect) {
	s.Bounds = bounds

	extent := bounds.W
	if s.Axis == Vertical {
		extent = bounds.H
	}

	var fixedSum, totalWeight float32
	lastProp := -1
	for i, p := range s.panels {
		switch sz := s.axisSize(p); sz.Mode {
		case SizeFixed:
			fixedSum += sz.Value
		case SizeProportional:
			totalWeight += sz.Value
			lastProp = i
		}
	}

	remaining := extent - fixedSum
	if remaining < 0 {
		remaining = 0
	}

	// Fixed panels placed after the last proportional one; the absorber
	// below stops short of them.
	var trailingFixed float32
	if lastProp >= 0 {
		for _, p := range s.panels[lastProp+1:] {
			if sz := s.axisSize(p); sz.Mode == SizeFixed {
				trailingFixed += sz.Value
			}
		}
	}

	start := bounds.X
	if s.Axis == Vertical {
		start = bounds.Y
	}
	offset := start

	for i, p := range s.panels {
		var size float32
		switch sz := s.axisSize(p); sz.Mode {
		case SizeFixed:
			size = sz.Value
		case SizeProportional:
			// zero total weight: queried panel still gets a rect
			if totalWeight > 0 {
				if i == lastProp {
					// absorb float residue so the partition closes at
					// the parent's edge instead of a share's rounding
					size = start + extent - trailingFixed - offset
					if size < 0 {
						size = 0
					}
				} else {
					size = remaining * sz.Value / totalWeight
				}
			}
		}
		if s.Axis == Horizontal {
			p.bounds = Rect{X: offset, Y: bounds.Y, W: size, H: bounds.H}
		} else {
			p.bounds = Rect{X: bounds.X, Y: offset, W: bounds.W, H: size}
		}
		offset += size
	}
}

// Update re-runs layout (bounds may have been resized), then fans out with
// OR aggregation, honoring the cancel flag between panels.
func (s *Stack) Update(ctx *UpdateContext) bool {
	s.Layout(s.Bounds)
	changed := false
	for _, p := range s.panels {
		if ctx.Cancelled() {
			break
		}
		if p.Update(ctx) {
			changed = true
		}
	}
	return changed
}

func (s *Stack) Render(t *RenderTarget) {
	for _, p := range s.panels {
		p.Render(t)
	}
}

func (s *Stack) axisSize(p *Panel) Size {
	if s.Axis == Horizontal {
		return p.Width
	}
	return p.Height
}
