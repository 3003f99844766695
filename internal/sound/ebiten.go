package sound

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/moonpatrol/internal/core"
)

// EbitenSpeaker plays tones through ebiten's audio context. It belongs to
// the window front end and must only be used from the ebiten game loop.
type EbitenSpeaker struct {
	ctx     *audio.Context
	bank    *bank
	playing []*audio.Player
	errs    []error
}

// NewEbitenSpeaker reuses the process audio context or creates it.
func NewEbitenSpeaker() *EbitenSpeaker {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &EbitenSpeaker{ctx: ctx, bank: newBank()}
}

// Play starts the tone and returns immediately.
func (s *EbitenSpeaker) Play(t core.Tone) {
	data := s.bank.get(t)
	if len(data) == 0 {
		return
	}

	live := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			s.errs = append(s.errs, err)
		}
	}

	p := s.ctx.NewPlayerFromBytes(data)
	p.Play()
	s.playing = append(live, p)
}

// Close stops every tone still playing and reports every player that
// failed to close.
func (s *EbitenSpeaker) Close() error {
	errs := s.errs
	for _, p := range s.playing {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.playing = nil
	s.errs = nil
	return errors.Join(errs...)
}
