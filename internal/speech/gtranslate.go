package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultGoogleTranslateEndpoint serves the Google Translate TTS audio
	DefaultGoogleTranslateEndpoint = "https://translate.google.com"
	// MaxChunkRunes is the longest text the TTS endpoint accepts per request
	MaxChunkRunes  = 200
	defaultTimeout = 15 * time.Second
	maxAudioSize   = 8 << 20
)

// GoogleTranslateTTS speaks text with the Google Translate voice
type GoogleTranslateTTS struct {
	endpoint string
	client   *http.Client
	player   Player
	lang     LanguageFunc
	logger   *zap.Logger
}

// NewGoogleTranslateTTS creates a Google Translate speaker
func NewGoogleTranslateTTS(endpoint string, timeout time.Duration, player Player, lang LanguageFunc, logger *zap.Logger) *GoogleTranslateTTS {
	if endpoint == "" {
		endpoint = DefaultGoogleTranslateEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoogleTranslateTTS{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
		player:   player,
		lang:     lang,
		logger:   logger,
	}
}

// Speak fetches and plays the text chunk by chunk
func (g *GoogleTranslateTTS) Speak(ctx context.Context, text string) error {
	lang := g.lang()
	chunks := splitChunks(text, MaxChunkRunes)
	g.logger.Debug("Speaking text",
		zap.String("lang", lang),
		zap.Int("chunks", len(chunks)))

	for i, chunk := range chunks {
		audio, err := g.fetch(ctx, chunk, lang)
		if err != nil {
			return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		if err := g.player.Play(ctx, "mp3", io.NopCloser(bytes.NewReader(audio))); err != nil {
			return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}
	return nil
}

func (g *GoogleTranslateTTS) fetch(ctx context.Context, chunk, lang string) ([]byte, error) {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", lang)
	query.Set("q", chunk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"/translate_tts?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts request failed with status %s", resp.Status)
	}
	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read tts audio: %w", err)
	}
	return audio, nil
}
