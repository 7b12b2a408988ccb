package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Generator streamers. All are infinite unless wrapped in beep.Take; all
// produce identical left/right channels.

// ToneStreamer produces a fixed-frequency sine.
type ToneStreamer struct {
	sr    beep.SampleRate
	freq  float64
	gain  float64
	phase float64
}

func NewTone(sr beep.SampleRate, freq, gain float64) *ToneStreamer {
	return &ToneStreamer{sr: sr, freq: freq, gain: gain}
}

func (t *ToneStreamer) Stream(samples [][2]float64) (int, bool) {
	step := t.freq / float64(t.sr)
	for i := range samples {
		v := math.Sin(2*math.Pi*t.phase) * t.gain
		samples[i][0] = v
		samples[i][1] = v
		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
	}
	return len(samples), true
}

func (t *ToneStreamer) Err() error { return nil }

// SweepStreamer glides linearly from f0 to f1 over its nominal duration,
// then holds f1.
type SweepStreamer struct {
	sr     beep.SampleRate
	f0, f1 float64
	gain   float64
	totalN int
	pos    int
	phase  float64
}

func NewSweep(sr beep.SampleRate, f0, f1 float64, dur time.Duration, gain float64) *SweepStreamer {
	n := sr.N(dur)
	if n < 1 {
		n = 1
	}
	return &SweepStreamer{sr: sr, f0: f0, f1: f1, gain: gain, totalN: n}
}

func (s *SweepStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(s.pos) / float64(s.totalN)
		if t > 1 {
			t = 1
		}
		freq := s.f0 + (s.f1-s.f0)*t
		v := math.Sin(2*math.Pi*s.phase) * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.phase += freq / float64(s.sr)
		if s.phase >= 1 {
			s.phase -= 1
		}
		s.pos++
	}
	return len(samples), true
}

func (s *SweepStreamer) Err() error { return nil }

// NoiseStreamer produces white noise fading linearly to silence across
// fadeN samples (0 disables the fade).
type NoiseStreamer struct {
	gain  float64
	fadeN int
	pos   int
	rng   *rand.Rand
}

func NewNoise(gain float64, fadeN int) *NoiseStreamer {
	return &NoiseStreamer{gain: gain, fadeN: fadeN, rng: rand.New(rand.NewSource(1))}
}

func (n *NoiseStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		env := 1.0
		if n.fadeN > 0 {
			env = 1 - float64(n.pos)/float64(n.fadeN)
			if env < 0 {
				env = 0
			}
		}
		v := (n.rng.Float64()*2 - 1) * n.gain * env
		samples[i][0] = v
		samples[i][1] = v
		n.pos++
	}
	return len(samples), true
}

func (n *NoiseStreamer) Err() error { return nil }

// gainStreamer scales another streamer by a fixed factor.
type gainStreamer struct {
	s    beep.Streamer
	gain float64
}

func (g *gainStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.s.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.gain
		samples[i][1] *= g.gain
	}
	return n, ok
}

func (g *gainStreamer) Err() error { return g.s.Err() }
