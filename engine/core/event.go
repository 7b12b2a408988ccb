package core

// Event model: the platform layer decodes native callbacks into this closed
// set exactly once; routing happens through a Dispatcher table instead of
// per-consumer switch statements.

type EventType uint8

const (
	EventTypeCloseRequested EventType = iota
	EventTypeResize
	EventTypeKey
	EventTypeMouseMove
	EventTypeMouseButton
	EventTypeScroll
	EventTypeWindowFocus
	eventTypeCount
)

type Event interface{ Type() EventType }

type EventCloseRequested struct{}

func (EventCloseRequested) Type() EventType { return EventTypeCloseRequested }

type EventResize struct{ W, H int }

func (EventResize) Type() EventType { return EventTypeResize }

type EventKey struct {
	Key    Key
	Down   bool
	Repeat bool
	Mods   Mod
}

func (EventKey) Type() EventType { return EventTypeKey }

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) Type() EventType { return EventTypeMouseMove }

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) Type() EventType { return EventTypeMouseButton }

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) Type() EventType { return EventTypeScroll }

type EventWindowFocus struct{ Focused bool }

func (EventWindowFocus) Type() EventType { return EventTypeWindowFocus }

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyM
	KeyP
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Handler consumes an event; returning true stops propagation.
type Handler func(ev Event) bool

// Dispatcher routes decoded events to handlers registered per event type.
// Registration and dispatch both happen on the owning thread.
type Dispatcher struct {
	handlers [eventTypeCount][]Handler
}

func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// On registers h for events of type t. Handlers run in registration order.
func (d *Dispatcher) On(t EventType, h Handler) {
	if t >= eventTypeCount {
		return
	}
	d.handlers[t] = append(d.handlers[t], h)
}

// Dispatch routes ev to its handlers; reports whether one consumed it.
func (d *Dispatcher) Dispatch(ev Event) bool {
	t := ev.Type()
	if t >= eventTypeCount {
		return false
	}
	for _, h := range d.handlers[t] {
		if h(ev) {
			return true
		}
	}
	return false
}
