// Package ebitensink plays cue tones through the ebiten audio context.
package ebitensink

import (
	"sync"

	"github.com/gopxl/beep"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"platanus-survivor/internal/audio"
)

// Sink рендерит тон в PCM один раз и дальше проигрывает из кэша.
type Sink struct {
	mu      sync.Mutex
	ctx     *eaudio.Context
	rate    beep.SampleRate
	volume  float64
	cache   map[audio.Tone][]byte
	playing []*eaudio.Player
}

// New берёт текущий аудиоконтекст ebiten или создаёт новый.
func New(sampleRate int, volume float64) *Sink {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(sampleRate)
	}
	return &Sink{
		ctx:    ctx,
		rate:   beep.SampleRate(ctx.SampleRate()),
		volume: volume,
		cache:  make(map[audio.Tone][]byte),
	}
}

func (s *Sink) Play(t audio.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pcm, ok := s.cache[t]
	if !ok {
		pcm = audio.RenderPCM(audio.Synthesize(t, s.rate, s.volume))
		s.cache[t] = pcm
	}

	// Держим ссылки на звучащие плееры, отыгравшие закрываем
	alive := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			alive = append(alive, p)
		} else {
			p.Close()
		}
	}
	s.playing = alive

	p := s.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	s.playing = append(s.playing, p)
}
