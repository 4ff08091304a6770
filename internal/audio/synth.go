package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// squareWave: генератор прямоугольной волны фиксированной длины
type squareWave struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSquareWave создаёт генератор на duration
func NewSquareWave(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &squareWave{freq: freq, duration: rate.N(duration), rate: rate}
}

func (o *squareWave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *squareWave) Err() error { return nil }

// decay: экспоненциальное затухание до 1/10 к концу сигнала
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if d.total > 0 && d.position < d.total {
			vol = math.Pow(0.1, float64(d.position)/float64(d.total))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume: log2(0) = -Inf, поэтому ноль, это Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Synthesize собирает поток для тона: волна, затухание, громкость
func Synthesize(t Tone, rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSquareWave(t.Freq, t.Duration, rate)
	return newVolume(newDecay(osc, t.Duration, rate), volume)
}

// RenderPCM вычитывает поток целиком в 16-битный стерео PCM (little endian)
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := math.Max(-1, math.Min(1, buf[i][ch]))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
