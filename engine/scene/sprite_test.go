package scene

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// TestFirstAdvanceCommits: the first update accepts the timestamp
// unconditionally and reports changed.
func TestFirstAdvanceCommits(t *testing.T) {
	s := &Sprite{X: 5, Y: 7}
	if !s.Advance(t0) {
		t.Error("first advance must report changed")
	}
	if s.LastUpdate() != t0 {
		t.Errorf("last update = %v, want %v", s.LastUpdate(), t0)
	}
	if s.X != 5 || s.Y != 7 {
		t.Errorf("first advance moved the sprite to (%v,%v)", s.X, s.Y)
	}
}

// TestThrottleDropsShortSteps: deltas under 10ms leave position, rotation
// and the timestamp untouched.
func TestThrottleDropsShortSteps(t *testing.T) {
	s := &Sprite{Speed: 100, Heading: 90, Spin: 45}
	s.Advance(t0)

	for _, dt := range []time.Duration{time.Millisecond, 5 * time.Millisecond, 9 * time.Millisecond} {
		if s.Advance(t0.Add(dt)) {
			t.Errorf("advance at +%v reported changed", dt)
		}
	}
	if s.X != 0 || s.Y != 0 || s.Rotation != 0 {
		t.Errorf("throttled advance mutated state: pos=(%v,%v) rot=%v", s.X, s.Y, s.Rotation)
	}
	if s.LastUpdate() != t0 {
		t.Errorf("throttled advance moved timestamp to %v", s.LastUpdate())
	}
}

// TestStationarySpriteNeverChanges: speed=0 and spin=0 report changed only
// on the very first call.
func TestStationarySpriteNeverChanges(t *testing.T) {
	s := &Sprite{}
	if !s.Advance(t0) {
		t.Fatal("first advance must report changed")
	}
	now := t0
	for i := 0; i < 10; i++ {
		now = now.Add(50 * time.Millisecond)
		if s.Advance(now) {
			t.Fatalf("stationary sprite reported changed on step %d", i)
		}
	}
}

// TestHeadingZeroMovesUp: heading 0, speed 100, 1s step moves the sprite
// exactly (0,-100) in the Y-down coordinate system.
func TestHeadingZeroMovesUp(t *testing.T) {
	s := &Sprite{Heading: 0, Speed: 100}
	s.Advance(t0)
	if !s.Advance(t0.Add(time.Second)) {
		t.Fatal("moving sprite must report changed")
	}
	if s.X != 0 {
		t.Errorf("X = %v, want 0 (epsilon snap)", s.X)
	}
	if s.Y != -100 {
		t.Errorf("Y = %v, want -100", s.Y)
	}
	if s.Rotation != 0 {
		t.Errorf("rotation = %v, want unchanged 0", s.Rotation)
	}
}

// TestSpinWrapsRotation: rotation stays within [0,360).
func TestSpinWrapsRotation(t *testing.T) {
	s := &Sprite{Rotation: 350, Spin: 40}
	s.Advance(t0)
	s.Advance(t0.Add(time.Second))
	if math.Abs(s.Rotation-30) > 1e-9 {
		t.Errorf("rotation = %v, want 30", s.Rotation)
	}

	s = &Sprite{Rotation: 10, Spin: -40}
	s.Advance(t0)
	s.Advance(t0.Add(time.Second))
	if math.Abs(s.Rotation-330) > 1e-9 {
		t.Errorf("negative spin rotation = %v, want 330", s.Rotation)
	}
}

// TestPolarRoundTrip: velocity -> (speed,heading) -> velocity survives for
// non-zero vectors in all quadrants.
func TestPolarRoundTrip(t *testing.T) {
	vectors := [][2]float64{
		{100, 0}, {0, 100}, {-100, 0}, {0, -100},
		{3, 4}, {-3, 4}, {3, -4}, {-3, -4}, {0.5, 0.25},
	}
	for _, v := range vectors {
		speed, heading := Polar(v[0], v[1])
		if heading < 0 || heading >= 360 {
			t.Errorf("Polar(%v,%v) heading = %v, want [0,360)", v[0], v[1], heading)
		}
		vx, vy := Velocity(speed, heading)
		if math.Abs(vx-v[0]) > 1e-9 || math.Abs(vy-v[1]) > 1e-9 {
			t.Errorf("round trip (%v,%v) -> (%v,%v)", v[0], v[1], vx, vy)
		}
	}
}

// TestVelocityEpsilonSnap: axis-aligned headings produce exact zeros on
// the perpendicular component.
func TestVelocityEpsilonSnap(t *testing.T) {
	for _, tc := range []struct {
		heading string
		deg     float64
		zx, zy  bool
	}{
		{"up", 0, true, false},
		{"right", 90, false, true},
		{"down", 180, true, false},
		{"left", 270, false, true},
	} {
		vx, vy := Velocity(100, tc.deg)
		if tc.zx && vx != 0 {
			t.Errorf("heading %s: vx = %v, want 0", tc.heading, vx)
		}
		if tc.zy && vy != 0 {
			t.Errorf("heading %s: vy = %v, want 0", tc.heading, vy)
		}
	}
}

// TestSetVelocityKeepsDirection: SetVelocity then Advance moves along the
// requested vector.
func TestSetVelocityKeepsDirection(t *testing.T) {
	s := &Sprite{}
	s.SetVelocity(30, -40)
	if math.Abs(s.Speed-50) > 1e-9 {
		t.Errorf("speed = %v, want 50", s.Speed)
	}
	s.Advance(t0)
	s.Advance(t0.Add(time.Second))
	if math.Abs(s.X-30) > 1e-6 || math.Abs(s.Y+40) > 1e-6 {
		t.Errorf("pos = (%v,%v), want (30,-40)", s.X, s.Y)
	}
}
