// Package speaker opens the system audio device through beep.
package speaker

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/paddleball/internal/audio"
)

// Speaker is the system audio device. It implements audio.Output.
type Speaker struct{}

// Open initializes the audio device with a ~33ms buffer
func Open() (*Speaker, error) {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/30)); err != nil {
		return nil, err
	}
	return &Speaker{}, nil
}

func (s *Speaker) Play(streamers ...beep.Streamer) {
	speaker.Play(streamers...)
}

// Close shuts down the audio device
func (s *Speaker) Close() {
	speaker.Close()
}
