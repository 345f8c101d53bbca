package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Sounds synthesizes short square-wave blips at startup and plays them
// on demand. No audio assets ship with the binary.
type Sounds struct {
	ctx   *audio.Context
	mute  bool
	clips map[string][]byte
}

func NewSounds(mute bool) *Sounds {
	return &Sounds{
		ctx:  audio.NewContext(sampleRate),
		mute: mute,
		clips: map[string][]byte{
			"jump": squareWave(660, 0.10, 0.25),
			"land": squareWave(200, 0.05, 0.18),
			"coin": squareWave(1320, 0.08, 0.22),
			"flag": squareWave(880, 0.30, 0.25),
		},
	}
}

func (s *Sounds) Play(name string) {
	if s.mute {
		return
	}
	clip, ok := s.clips[name]
	if !ok {
		return
	}
	p := s.ctx.NewPlayerFromBytes(clip)
	p.Play()
}

// squareWave renders a mono tone duplicated to both channels as
// 16-bit little-endian stereo PCM, with a linear fade-out so clips
// don't click when they end.
func squareWave(freq, dur, vol float64) []byte {
	n := int(dur * sampleRate)
	out := make([]byte, n*4)
	period := sampleRate / freq
	for i := 0; i < n; i++ {
		v := vol
		if math.Mod(float64(i), period) >= period/2 {
			v = -vol
		}
		v *= 1 - float64(i)/float64(n)
		sample := int16(v * math.MaxInt16)
		out[i*4] = byte(sample)
		out[i*4+1] = byte(sample >> 8)
		out[i*4+2] = byte(sample)
		out[i*4+3] = byte(sample >> 8)
	}
	return out
}
