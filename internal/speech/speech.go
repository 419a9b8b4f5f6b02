// Package speech reads translated text aloud.
package speech

import (
	"context"
	"errors"
	"fmt"

	"github.com/berrythewa/cliplate/internal/config"
	"go.uber.org/zap"
)

// ErrUnsupportedFormat is returned by players for audio they cannot decode
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Speaker speaks text. Speak blocks until playback finishes or ctx is done.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// LanguageFunc reports the language to speak in at the time of the call
type LanguageFunc func() string

// Nop is a Speaker that does nothing
type Nop struct{}

// Speak implements Speaker
func (Nop) Speak(context.Context, string) error { return nil }

// New creates the speaker named in the configuration. lang is consulted on
// every Speak so a language change applies to the next utterance.
func New(cfg *config.Config, lang LanguageFunc, logger *zap.Logger) (Speaker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if lang == nil {
		lang = func() string { return cfg.Language }
	}

	switch cfg.Speech.Provider {
	case config.SpeechNone:
		return Nop{}, nil
	case config.SpeechGoogleTranslate:
		player := NewBeepPlayer(cfg.Speech.VolumeDB)
		return NewGoogleTranslateTTS(cfg.Speech.Endpoint, cfg.Speech.Timeout, player, lang, logger), nil
	case config.SpeechGoogleCloud:
		player := NewBeepPlayer(cfg.Speech.VolumeDB)
		return NewGoogleCloud(cfg.Speech.GoogleCloud, player, lang, logger), nil
	default:
		return nil, fmt.Errorf("unknown speech provider %q", cfg.Speech.Provider)
	}
}
