package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	gctts "cloud.google.com/go/texttospeech/apiv1"
	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/berrythewa/cliplate/internal/config"
	"go.uber.org/zap"
)

// GoogleCloud speaks text with Google Cloud Text-to-Speech. Credentials are
// resolved by the client library (GOOGLE_APPLICATION_CREDENTIALS).
type GoogleCloud struct {
	cfg    config.GoogleCloudConfig
	player Player
	lang   LanguageFunc
	logger *zap.Logger
}

// NewGoogleCloud creates a Cloud Text-to-Speech speaker
func NewGoogleCloud(cfg config.GoogleCloudConfig, player Player, lang LanguageFunc, logger *zap.Logger) *GoogleCloud {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoogleCloud{cfg: cfg, player: player, lang: lang, logger: logger}
}

// Speak synthesizes text as MP3 and plays it
func (g *GoogleCloud) Speak(ctx context.Context, text string) error {
	client, err := gctts.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	defer client.Close()

	req := g.request(text, g.lang())
	started := time.Now()
	resp, err := client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	g.logger.Debug("Speech synthesized",
		zap.String("lang", req.GetVoice().GetLanguageCode()),
		zap.Duration("took", time.Since(started)))

	return g.player.Play(ctx, "mp3", io.NopCloser(bytes.NewReader(resp.GetAudioContent())))
}

func (g *GoogleCloud) request(text, lang string) *ttspb.SynthesizeSpeechRequest {
	return &ttspb.SynthesizeSpeechRequest{
		Input: &ttspb.SynthesisInput{
			InputSource: &ttspb.SynthesisInput_Text{Text: text},
		},
		Voice: &ttspb.VoiceSelectionParams{
			LanguageCode: lang,
			Name:         g.cfg.Voice,
		},
		AudioConfig: &ttspb.AudioConfig{
			AudioEncoding: ttspb.AudioEncoding_MP3,
			SpeakingRate:  g.cfg.SpeakingRate,
			Pitch:         g.cfg.Pitch,
			VolumeGainDb:  g.cfg.VolumeGainDB,
		},
	}
}
