// Package translate turns clipboard text into text in a selected language.
package translate

import (
	"context"
	"errors"
	"fmt"

	"github.com/berrythewa/cliplate/internal/config"
	"go.uber.org/zap"
)

var (
	// ErrEmptyResponse is returned when a provider answers without any translated text
	ErrEmptyResponse = errors.New("translation provider returned no text")
	// ErrUnsupportedLanguage is returned for language codes that are not valid tags
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Translation is the result of translating one piece of text
type Translation struct {
	Source     string
	Text       string
	SourceLang string // detected by the provider, empty when unknown
	TargetLang string
	Provider   string
}

// Translator translates text into a target language
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (Translation, error)
	Name() string
}

// New creates the translator named in the configuration
func New(cfg *config.Config, logger *zap.Logger) (Translator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Translator.Provider {
	case config.TranslatorGoogle:
		return NewGoogleWeb(cfg.Translator.Endpoint, cfg.Translator.Timeout, logger), nil
	case config.TranslatorOpenAI:
		return NewOpenAI(cfg.Translator.OpenAI, cfg.Translator.Timeout, logger)
	default:
		return nil, fmt.Errorf("unknown translator provider %q", cfg.Translator.Provider)
	}
}
