package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

func drain(s beep.Streamer, n int) [][2]float64 {
	out := make([][2]float64, n)
	s.Stream(out)
	return out
}

// TestToneAmplitudeAndChannels: the sine stays within gain and both
// channels carry the same signal.
func TestToneAmplitudeAndChannels(t *testing.T) {
	tone := NewTone(testRate, 440, 0.5)
	samples := drain(tone, 4800)
	var peak float64
	for _, s := range samples {
		if s[0] != s[1] {
			t.Fatal("channels diverged")
		}
		if v := math.Abs(s[0]); v > peak {
			peak = v
		}
	}
	if peak > 0.5+1e-9 {
		t.Errorf("peak = %v, exceeds gain 0.5", peak)
	}
	if peak < 0.45 {
		t.Errorf("peak = %v, sine never reached its amplitude", peak)
	}
}

// TestToneContinuity: no discontinuity across Stream calls (phase carries
// over; adjacent samples of a 440Hz sine at 48kHz differ by < 0.06).
func TestToneContinuity(t *testing.T) {
	tone := NewTone(testRate, 440, 1)
	a := drain(tone, 64)
	b := drain(tone, 64)
	jump := math.Abs(b[0][0] - a[63][0])
	if jump > 0.06 {
		t.Errorf("discontinuity %v across Stream calls", jump)
	}
}

// TestSweepReachesTarget: the instantaneous frequency glides toward f1;
// after the nominal duration the phase step settles at f1.
func TestSweepReachesTarget(t *testing.T) {
	dur := 100 * time.Millisecond
	s := NewSweep(testRate, 100, 200, dur, 1)
	drain(s, testRate.N(dur)+10)
	if s.pos <= s.totalN {
		t.Fatalf("pos = %d, want past totalN %d", s.pos, s.totalN)
	}
	// stream a bit more; must hold without panicking or resetting
	out := drain(s, 64)
	for _, v := range out {
		if math.Abs(v[0]) > 1 {
			t.Errorf("sample %v out of range after sweep end", v[0])
		}
	}
}

// TestNoiseFadesOut: samples stay in range and reach silence after fadeN.
func TestNoiseFadesOut(t *testing.T) {
	n := NewNoise(0.8, 1000)
	samples := drain(n, 1500)
	for i, s := range samples {
		if math.Abs(s[0]) > 0.8 {
			t.Fatalf("sample %d = %v exceeds gain", i, s[0])
		}
	}
	for i := 1000; i < 1500; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("sample %d = %v after fade end, want 0", i, samples[i][0])
		}
	}
}

// TestGainStreamerScales: the wrapper multiplies pass-through samples.
func TestGainStreamerScales(t *testing.T) {
	tone := NewTone(testRate, 440, 1)
	g := &gainStreamer{s: tone, gain: 0.25}
	samples := drain(g, 4800)
	var peak float64
	for _, s := range samples {
		if v := math.Abs(s[0]); v > peak {
			peak = v
		}
	}
	if peak > 0.25+1e-9 {
		t.Errorf("peak = %v, exceeds scaled gain", peak)
	}
	if peak < 0.2 {
		t.Errorf("peak = %v, gain crushed the signal", peak)
	}
}
