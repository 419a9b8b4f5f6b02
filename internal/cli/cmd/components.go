package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/berrythewa/cliplate/internal/clipboard"
	"github.com/berrythewa/cliplate/internal/session"
	"github.com/berrythewa/cliplate/internal/speech"
	"github.com/berrythewa/cliplate/internal/storage"
	"github.com/berrythewa/cliplate/internal/translate"
)

// openHistory opens the history database, or returns nil when history is disabled
func openHistory() (*storage.BoltStorage, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}
	store, err := storage.NewBoltStorage(storage.StorageConfig{
		DBPath:    cfg.Storage.DBPath,
		Logger:    GetZapLogger(),
		KeepItems: cfg.Storage.KeepItems,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}

// sessionParts are the components a clipboard session is assembled from
type sessionParts struct {
	session *session.Session
	history *storage.BoltStorage
}

func (p *sessionParts) Close() {
	if p.history != nil {
		if err := p.history.Close(); err != nil {
			GetZapLogger().Warn("Failed to close history", zap.Error(err))
		}
	}
}

// newSession wires translator, speaker, history and clipboard into a session
// that shows translations on display
func newSession(display session.Display, speakAll bool) (*sessionParts, error) {
	logger := GetZapLogger()

	translator, err := translate.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	provider, err := clipboard.NewProvider(cfg.Clipboard.Backend, logger)
	if err != nil {
		return nil, err
	}

	processor, err := clipboard.ProcessorFromConfig(cfg.Clipboard, logger)
	if err != nil {
		return nil, err
	}

	var sess *session.Session
	currentLang := func() string {
		if sess == nil {
			return cfg.Language
		}
		return sess.Language()
	}
	speaker, err := speech.New(cfg, currentLang, logger)
	if err != nil {
		return nil, err
	}

	parts := &sessionParts{}
	history, err := openHistory()
	if err != nil {
		return nil, err
	}
	opts := session.Options{
		Provider:          provider,
		Interval:          cfg.Interval(),
		Translator:        translator,
		Speaker:           speaker,
		Display:           display,
		Processor:         processor,
		Language:          cfg.Language,
		Fonts:             cfg.FontNames(),
		SpeakTranslations: speakAll,
		Logger:            logger,
	}
	if history != nil {
		parts.history = history
		opts.History = history
	}

	sess, err = session.New(opts)
	if err != nil {
		parts.Close()
		return nil, err
	}
	parts.session = sess
	return parts, nil
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
