// Package speakersink plays cue tones through the beep speaker.
package speakersink

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"platanus-survivor/internal/audio"
)

// Sink подмешивает тоны в общий микшер динамика.
type Sink struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
}

// Open инициализирует динамик. Вызывать один раз за процесс.
func Open(sampleRate int, volume float64) (*Sink, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Sink{rate: rate, volume: volume, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Sink) Play(t audio.Tone) {
	streamer := audio.Synthesize(t, s.rate, s.volume)
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close глушит всё, что ещё звучит
func (s *Sink) Close() error {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}
