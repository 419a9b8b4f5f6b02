package speech

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Player plays an encoded audio stream and blocks until it ends
type Player interface {
	Play(ctx context.Context, format string, r io.ReadCloser) error
}

// BeepPlayer plays mp3 and wav through the system audio device
type BeepPlayer struct {
	mu       sync.Mutex
	volumeDB float64
}

// NewBeepPlayer creates a player with the given volume in dB (negative is quieter)
func NewBeepPlayer(volumeDB float64) *BeepPlayer {
	return &BeepPlayer{volumeDB: volumeDB}
}

// Play decodes and plays r. Cancelling ctx stops playback.
func (p *BeepPlayer) Play(ctx context.Context, format string, r io.ReadCloser) error {
	var (
		streamer beep.StreamSeekCloser
		sf       beep.Format
		err      error
	)
	switch strings.ToLower(format) {
	case "mp3":
		streamer, sf, err = mp3.Decode(r)
	case "wav":
		streamer, sf, err = wav.Decode(r)
	default:
		r.Close()
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", format, err)
	}
	defer streamer.Close()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := speaker.Init(sf.SampleRate, sf.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   p.volumeDB,
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(vol, beep.Callback(func() { close(done) })))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
