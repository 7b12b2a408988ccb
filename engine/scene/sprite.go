package scene

import (
	"math"
	"time"

	"github.com/grapengine/grape/engine/colors"
	"github.com/grapengine/grape/engine/gfx/renderer2d"
)

// MinStep is the sprite integration time-slice. Advance calls closer
// together than this are dropped entirely; the elapsed time is not carried
// forward. Callers that need exact pacing must update at >= MinStep.
const MinStep = 10 * time.Millisecond

// velocityEpsilon snaps near-zero velocity components so a sprite heading
// straight along an axis does not creep on the other one.
const velocityEpsilon = 1e-4

// Sprite is a leaf prop with heading/speed kinematics.
//
// Heading is the direction of travel in degrees with 0 pointing "up"
// (offset -90 from the standard math angle); Rotation is the visual angle
// in degrees; Spin is rotation change in degrees per second.
type Sprite struct {
	X, Y     float64
	Heading  float64
	Speed    float64
	Rotation float64
	Spin     float64
	Scale    float64
	FlipX    bool

	W, H float32
	Sub  renderer2d.SubTexture2D
	Tint colors.Color

	last    time.Time
	tracked bool
}

func NewSprite(sub renderer2d.SubTexture2D, w, h float32) *Sprite {
	return &Sprite{Sub: sub, W: w, H: h, Scale: 1, Tint: colors.White}
}

func (s *Sprite) Update(ctx *UpdateContext) bool { return s.Advance(ctx.Now) }

// Advance integrates position and rotation up to now and reports whether
// anything moved. Two states: on the first-ever call the timestamp is
// accepted unconditionally (avoids an unbounded initial delta) and the
// sprite reports changed; afterwards deltas under MinStep are dropped
// without touching any field. On an accepted step the new rotation,
// position and timestamp are committed together.
func (s *Sprite) Advance(now time.Time) bool {
	if !s.tracked {
		s.tracked = true
		s.last = now
		return true
	}

	dt := now.Sub(s.last)
	if dt < MinStep {
		return false
	}
	sec := dt.Seconds()

	rot := math.Mod(s.Rotation+s.Spin*sec, 360)
	if rot < 0 {
		rot += 360
	}

	vx, vy := Velocity(s.Speed, s.Heading)
	nx := s.X + vx*sec
	ny := s.Y + vy*sec

	changed := rot != s.Rotation || nx != s.X || ny != s.Y
	s.Rotation = rot
	s.X, s.Y = nx, ny
	s.last = now
	return changed
}

// LastUpdate returns the timestamp of the last accepted step (zero before
// the first).
func (s *Sprite) LastUpdate() time.Time { return s.last }

// SetVelocity replaces speed and heading from cartesian components.
func (s *Sprite) SetVelocity(vx, vy float64) {
	s.Speed, s.Heading = Polar(vx, vy)
}

func (s *Sprite) Render(t *RenderTarget) {
	if s.Sub.Texture == nil {
		return
	}
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	rotRad := float32(s.Rotation * math.Pi / 180)
	t.R2D.DrawSprite(
		float32(s.X), float32(s.Y),
		s.W*float32(scale), s.H*float32(scale),
		s.Sub, s.Tint, rotRad, s.FlipX,
	)
}

// Velocity converts (speed, heading°) to cartesian components, snapping
// each to zero below velocityEpsilon.
func Velocity(speed, heading float64) (vx, vy float64) {
	rad := (heading - 90) * math.Pi / 180
	vx = speed * math.Cos(rad)
	vy = speed * math.Sin(rad)
	if math.Abs(vx) < velocityEpsilon {
		vx = 0
	}
	if math.Abs(vy) < velocityEpsilon {
		vy = 0
	}
	return vx, vy
}

// Polar is the inverse of Velocity: speed is the magnitude, heading the
// travel direction in degrees normalized to [0,360).
func Polar(vx, vy float64) (speed, heading float64) {
	speed = math.Hypot(vx, vy)
	heading = math.Atan2(vy, vx)*180/math.Pi + 90
	heading = math.Mod(heading, 360)
	if heading < 0 {
		heading += 360
	}
	return speed, heading
}
