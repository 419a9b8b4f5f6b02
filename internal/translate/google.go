package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	// DefaultGoogleEndpoint is the public Google Translate web endpoint
	DefaultGoogleEndpoint = "https://translate.googleapis.com"
	defaultTimeout        = 10 * time.Second
	maxResponseSize       = 4 << 20
)

// GoogleWeb translates through the keyless Google Translate web endpoint
type GoogleWeb struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewGoogleWeb creates a Google Translate web client
func NewGoogleWeb(endpoint string, timeout time.Duration, logger *zap.Logger) *GoogleWeb {
	if endpoint == "" {
		endpoint = DefaultGoogleEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoogleWeb{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Name returns the provider name
func (g *GoogleWeb) Name() string {
	return "google"
}

// Translate translates text with automatic source language detection
func (g *GoogleWeb) Translate(ctx context.Context, text, targetLang string) (Translation, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", targetLang)
	query.Set("dt", "t")
	query.Set("q", text)
	reqURL := g.endpoint + "/translate_a/single?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Translation{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Translation{}, fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Translation{}, fmt.Errorf("failed to read translation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Translation{}, fmt.Errorf("translation request failed with status %s", resp.Status)
	}

	translated, sourceLang, err := parseGoogleResponse(body)
	if err != nil {
		return Translation{}, err
	}

	g.logger.Debug("Translated text",
		zap.String("source_lang", sourceLang),
		zap.String("target_lang", targetLang),
		zap.Int("chars", len(text)))

	return Translation{
		Source:     text,
		Text:       translated,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Provider:   g.Name(),
	}, nil
}

// parseGoogleResponse joins the translated segments of a translate_a/single
// response. The payload looks like [[["gato","cat",null,null,1]],null,"en",...].
func parseGoogleResponse(body []byte) (string, string, error) {
	if !gjson.ValidBytes(body) {
		return "", "", fmt.Errorf("invalid translation response: %.64q", body)
	}
	root := gjson.ParseBytes(body)

	var sb strings.Builder
	root.Get("0").ForEach(func(_, segment gjson.Result) bool {
		sb.WriteString(segment.Get("0").String())
		return true
	})
	if sb.Len() == 0 {
		return "", "", ErrEmptyResponse
	}
	return sb.String(), root.Get("2").String(), nil
}
