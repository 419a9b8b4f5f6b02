// Package session holds the running translator state: the clipboard
// watcher, the selected language and the text currently on display.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/berrythewa/cliplate/internal/clipboard"
	"github.com/berrythewa/cliplate/internal/speech"
	"github.com/berrythewa/cliplate/internal/storage"
	"github.com/berrythewa/cliplate/internal/translate"
	"go.uber.org/zap"
)

// ErrUnknownFont is returned by SetFont for fonts outside the configured list
var ErrUnknownFont = errors.New("unknown font")

// Display shows translated text
type Display interface {
	ShowTranslation(text string)
	SetFont(name string)
}

// History records successful translations
type History interface {
	SaveTranslation(rec *storage.TranslationRecord) error
}

// Options configures a Session. Translator and Display are required.
type Options struct {
	Provider   clipboard.Provider
	Interval   time.Duration
	Translator translate.Translator
	Speaker    speech.Speaker
	Display    Display
	History    History
	Processor  *clipboard.TextProcessor
	Language   string
	Fonts      []string
	// SpeakTranslations speaks every new translation after showing it
	SpeakTranslations bool
	Logger            *zap.Logger
}

// Session reacts to clipboard changes by translating and displaying them
type Session struct {
	watcher    *clipboard.Watcher
	translator translate.Translator
	speaker    speech.Speaker
	display    Display
	history    History
	processor  *clipboard.TextProcessor
	fonts      []string
	speakAll   bool
	logger     *zap.Logger

	mu        sync.RWMutex
	language  string
	displayed string
	runCtx    context.Context
}

// New creates a session. The watcher is only built when a clipboard
// provider is given; without one, text arrives through HandleText.
func New(opts Options) (*Session, error) {
	if opts.Translator == nil {
		return nil, errors.New("session: translator is required")
	}
	if opts.Display == nil {
		return nil, errors.New("session: display is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	speaker := opts.Speaker
	if speaker == nil {
		speaker = speech.Nop{}
	}

	s := &Session{
		translator: opts.Translator,
		speaker:    speaker,
		display:    opts.Display,
		history:    opts.History,
		processor:  opts.Processor,
		fonts:      opts.Fonts,
		speakAll:   opts.SpeakTranslations,
		logger:     logger,
		runCtx:     context.Background(),
	}

	if opts.Language != "" {
		if err := s.SetLanguage(opts.Language); err != nil {
			return nil, err
		}
	}

	if opts.Provider != nil {
		s.watcher = clipboard.NewWatcher(opts.Provider, s.onClipboardChange, logger, opts.Interval)
	}
	return s, nil
}

// Watcher returns the clipboard watcher, nil when the session has no provider
func (s *Session) Watcher() *clipboard.Watcher {
	return s.watcher
}

// Run polls the clipboard until ctx is cancelled
func (s *Session) Run(ctx context.Context) error {
	if s.watcher == nil {
		return errors.New("session: no clipboard provider")
	}

	s.mu.Lock()
	s.runCtx = ctx
	s.mu.Unlock()

	s.logger.Info("Session started",
		zap.String("lang", s.Language()),
		zap.String("translator", s.translator.Name()))
	return s.watcher.Run(ctx)
}

func (s *Session) onClipboardChange(text string) {
	s.mu.RLock()
	ctx := s.runCtx
	s.mu.RUnlock()
	s.HandleText(ctx, text)
}

// HandleText translates text into the selected language and shows it.
// Failures are logged and leave the display unchanged.
func (s *Session) HandleText(ctx context.Context, text string) {
	if s.processor != nil {
		processed, ok := s.processor.Process(text)
		if !ok {
			s.logger.Debug("Clipboard text skipped", zap.Int("chars", utf8.RuneCountInString(text)))
			return
		}
		text = processed
	}
	if text == "" {
		return
	}

	lang := s.Language()
	if lang == "" {
		s.logger.Debug("No language selected, skipping translation")
		return
	}

	started := time.Now()
	tr, err := s.translator.Translate(ctx, text, lang)
	if err != nil {
		s.logger.Error("Translation failed",
			zap.String("lang", lang),
			zap.String("translator", s.translator.Name()),
			zap.Error(err))
		return
	}

	s.mu.Lock()
	s.displayed = tr.Text
	s.mu.Unlock()
	s.display.ShowTranslation(tr.Text)

	s.logger.Info("Text translated",
		zap.String("lang", lang),
		zap.String("source_lang", tr.SourceLang),
		zap.Int("chars", utf8.RuneCountInString(text)),
		zap.Duration("took", time.Since(started)))

	if s.history != nil {
		rec := &storage.TranslationRecord{
			Source:     tr.Source,
			Text:       tr.Text,
			SourceLang: tr.SourceLang,
			TargetLang: lang,
			Provider:   tr.Provider,
		}
		if err := s.history.SaveTranslation(rec); err != nil {
			s.logger.Warn("Failed to save translation history", zap.Error(err))
		}
	}

	if s.speakAll {
		_ = s.Speak(ctx)
	}
}

// SetLanguage selects the target language for the next clipboard change.
// Text already on display is not translated again.
func (s *Session) SetLanguage(code string) error {
	normalized, err := translate.NormalizeLanguage(code)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.language = normalized
	s.mu.Unlock()

	s.logger.Info("Language selected", zap.String("lang", normalized))
	return nil
}

// Language returns the selected target language
func (s *Session) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// Displayed returns the text currently on display
func (s *Session) Displayed() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.displayed
}

// SetFont switches the display font. Names are matched case-insensitively
// against the configured fonts.
func (s *Session) SetFont(name string) error {
	for _, f := range s.fonts {
		if strings.EqualFold(f, name) {
			s.display.SetFont(f)
			s.logger.Debug("Font selected", zap.String("font", f))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownFont, name)
}

// Speak reads the displayed text aloud. Nothing happens when the display is
// empty. Errors are logged and returned.
func (s *Session) Speak(ctx context.Context) error {
	text := s.Displayed()
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if err := s.speaker.Speak(ctx, text); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		s.logger.Error("Speech failed", zap.String("lang", s.Language()), zap.Error(err))
		return err
	}
	return nil
}
