package core

// Input mirrors key and mouse state from the event stream.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float64
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

// Register wires the input mirror into an event dispatcher. The handlers
// never consume events; they observe and let propagation continue.
func (in *Input) Register(d *Dispatcher) {
	d.On(EventTypeKey, func(ev Event) bool {
		e := ev.(EventKey)
		in.keys[e.Key] = e.Down
		return false
	})
	d.On(EventTypeMouseButton, func(ev Event) bool {
		e := ev.(EventMouseButton)
		in.buttons[e.Button] = e.Down
		return false
	})
	d.On(EventTypeMouseMove, func(ev Event) bool {
		e := ev.(EventMouseMove)
		in.mouseX, in.mouseY = e.X, e.Y
		return false
	})
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) Mouse() (x, y float64)           { return in.mouseX, in.mouseY }
