package sound

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/vovakirdan/moonpatrol/internal/core"
)

// OtoSpeaker plays tones straight on the system audio device. It is used by
// the terminal front end, which has no ebiten game loop to drive audio.
type OtoSpeaker struct {
	ctx  *oto.Context
	bank *bank

	mu      sync.Mutex
	playing []*oto.Player
	errs    []error
}

// NewOtoSpeaker opens the default audio device. Only one oto context may
// exist per process.
func NewOtoSpeaker() (*OtoSpeaker, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: Channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	return &OtoSpeaker{ctx: ctx, bank: newBank()}, nil
}

// Play starts the tone and returns immediately.
func (s *OtoSpeaker) Play(t core.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.bank.get(t)
	if len(data) == 0 {
		return
	}
	s.reap()

	p := s.ctx.NewPlayer(bytes.NewReader(data))
	p.Play()
	s.playing = append(s.playing, p)
}

// reap closes players that have finished. Callers hold mu.
func (s *OtoSpeaker) reap() {
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
	s.playing = live
}

// Close stops every tone still playing and reports every player that
// failed to close.
func (s *OtoSpeaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

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
