// Package sound turns game tones into audible beeps.
package sound

import (
	"math"

	"github.com/vovakirdan/moonpatrol/internal/core"
)

// Output format shared by every speaker: signed 16-bit little-endian stereo.
const (
	SampleRate    = 44100
	Channels      = 2
	bytesPerFrame = 2 * Channels
)

// releaseSamples is the length of the linear fade at the end of each tone.
// Cutting a sine mid-wave clicks.
const releaseSamples = SampleRate / 200

// PCM renders a sine wave for the tone. Silent or empty tones yield no data.
func PCM(t core.Tone) []byte {
	n := int(t.Duration.Seconds() * SampleRate)
	if n <= 0 || t.Frequency <= 0 {
		return nil
	}
	vol := math.Max(0, math.Min(1, t.Volume))

	buf := make([]byte, n*bytesPerFrame)
	step := 2 * math.Pi * t.Frequency / SampleRate
	for i := 0; i < n; i++ {
		amp := vol
		if left := n - i; left < releaseSamples {
			amp *= float64(left) / releaseSamples
		}
		v := int16(math.Sin(step*float64(i)) * amp * math.MaxInt16)

		j := i * bytesPerFrame
		buf[j] = byte(v)
		buf[j+1] = byte(v >> 8)
		buf[j+2] = byte(v)
		buf[j+3] = byte(v >> 8)
	}
	return buf
}

// bank caches rendered tones by name. Tones with the same name are
// assumed to sound the same for the lifetime of a speaker.
type bank struct {
	pcm map[string][]byte
}

func newBank() *bank {
	return &bank{pcm: make(map[string][]byte)}
}

func (b *bank) get(t core.Tone) []byte {
	if data, ok := b.pcm[t.Name]; ok {
		return data
	}
	data := PCM(t)
	b.pcm[t.Name] = data
	return data
}
