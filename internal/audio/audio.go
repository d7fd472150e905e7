package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/diegok/paddleball/internal/game"
)

const (
	SampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Output is where sounds are sent, usually the system speaker.
type Output interface {
	Play(s ...beep.Streamer)
}

// Player turns frame events into sound effects
type Player struct {
	out   Output
	muted bool
}

// NewPlayer creates a player on out. A nil out plays nothing.
func NewPlayer(out Output) *Player {
	return &Player{out: out}
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}

func (p *Player) SetMuted(m bool) {
	p.muted = m
}

func (p *Player) Muted() bool {
	return p.muted
}

// Play sounds the events of one frame.
func (p *Player) Play(ev game.Events) {
	if p.out == nil || p.muted {
		return
	}
	notes := cuesFor(ev)
	if len(notes) == 0 {
		return
	}
	p.out.Play(sequence(notes))
}

// note is one square-wave blip
type note struct {
	freq     float64
	duration time.Duration
}

// cuesFor picks the notes for a frame's events. A score takes priority
// over the bounce that may have happened on the same frame.
func cuesFor(ev game.Events) []note {
	switch {
	case ev.Has(game.EventComputerScored):
		// Descending: the player lost the point
		return []note{{660, 100 * time.Millisecond}, {440, 100 * time.Millisecond}, {330, 150 * time.Millisecond}}
	case ev.Has(game.EventPlayerScored):
		return []note{{330, 100 * time.Millisecond}, {440, 100 * time.Millisecond}, {660, 150 * time.Millisecond}}
	case ev.Has(game.EventPaddleHit):
		return []note{{880, 50 * time.Millisecond}}
	case ev.Has(game.EventWallBounce):
		return []note{{440, 30 * time.Millisecond}}
	}
	return nil
}

func sequence(notes []note) beep.Streamer {
	streamers := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		streamers[i] = squareWave(n.freq, n.duration)
	}
	return beep.Seq(streamers...)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := SampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(SampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
