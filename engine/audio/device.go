// Package audio wraps the output device behind a mixer. Opening the device
// is loud (error return); playback on a closed device is a silent no-op.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const DefaultSampleRate = beep.SampleRate(48000)

// Device owns the speaker and a mixer all sounds route through.
type Device struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	sr     beep.SampleRate
	master float64
	open   bool
}

// Open initializes the speaker and starts the mixer. One device per
// process; the speaker is a global resource underneath.
func Open(sr beep.SampleRate) (*Device, error) {
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	d := &Device{mixer: &beep.Mixer{}, sr: sr, master: 1}
	if err := speaker.Init(sr, sr.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	speaker.Play(d.mixer)
	d.open = true
	return d, nil
}

func (d *Device) SampleRate() beep.SampleRate { return d.sr }

// SetMasterGain scales all subsequently played sounds; clamped to [0,1].
func (d *Device) SetMasterGain(g float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}
	d.master = g
}

// Play adds a streamer to the mixer. No-op once the device is closed.
func (d *Device) Play(s beep.Streamer) {
	d.mu.Lock()
	master := d.master
	open := d.open
	d.mu.Unlock()
	if !open {
		return
	}
	speaker.Lock()
	d.mixer.Add(&gainStreamer{s: s, gain: master})
	speaker.Unlock()
}

// PlayTone plays a sine tone at freq Hz for dur.
func (d *Device) PlayTone(freq float64, dur time.Duration, gain float64) {
	d.Play(beep.Take(d.sr.N(dur), NewTone(d.sr, freq, gain)))
}

// PlaySweep plays a linear frequency sweep from f0 to f1 Hz over dur.
func (d *Device) PlaySweep(f0, f1 float64, dur time.Duration, gain float64) {
	d.Play(beep.Take(d.sr.N(dur), NewSweep(d.sr, f0, f1, dur, gain)))
}

// PlayNoise plays white noise with a linear fade-out over dur.
func (d *Device) PlayNoise(dur time.Duration, gain float64) {
	d.Play(beep.Take(d.sr.N(dur), NewNoise(gain, d.sr.N(dur))))
}

// Close silences and clears the mixer. The speaker itself has no close;
// clearing the streamers is the documented teardown.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return
	}
	d.open = false
	speaker.Lock()
	d.mixer.Clear()
	speaker.Unlock()
}
