package sound

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moonpatrol/internal/core"
)

// Speaker plays tones. Play must not block the game loop.
type Speaker interface {
	Play(t core.Tone)
	Close() error
}

// Nop is a Speaker that discards everything. Used with --mute and when
// no audio device is available.
type Nop struct{}

func (Nop) Play(core.Tone) {}
func (Nop) Close() error   { return nil }

// Logged wraps a Speaker and records every tone at debug level.
type Logged struct {
	Speaker
	Logger *log.Logger
}

// Play logs the tone and forwards it.
func (l Logged) Play(t core.Tone) {
	l.Logger.Debug("sound", "name", t.Name, "freq", t.Frequency, "duration", t.Duration)
	l.Speaker.Play(t)
}

// Shutdown closes the speaker and logs a failure as a warning.
func Shutdown(s Speaker, logger *log.Logger) {
	if err := s.Close(); err != nil {
		logger.Warn("closing audio", "error", err)
	}
}
