package speech

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/berrythewa/cliplate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// recordingPlayer stores what it was asked to play
type recordingPlayer struct {
	mu     sync.Mutex
	played []string
	err    error
}

func (p *recordingPlayer) Play(_ context.Context, format string, r io.ReadCloser) error {
	defer r.Close()
	data, _ := io.ReadAll(r)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, format+":"+string(data))
	return p.err
}

func TestGoogleTranslateTTS_Speak(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate_tts", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "tw-ob", q.Get("client"))
		assert.Equal(t, "UTF-8", q.Get("ie"))
		queries = append(queries, q.Get("tl")+"|"+q.Get("q"))
		w.Write([]byte("audio-" + q.Get("q")))
	}))
	defer server.Close()

	player := &recordingPlayer{}
	lang := "pt"
	tts := NewGoogleTranslateTTS(server.URL, time.Second, player, func() string { return lang }, zaptest.NewLogger(t))

	text := strings.Repeat("a", MaxChunkRunes) + " fim"
	require.NoError(t, tts.Speak(context.Background(), text))

	assert.Equal(t, []string{"pt|" + strings.Repeat("a", MaxChunkRunes), "pt|fim"}, queries)
	assert.Equal(t, []string{"mp3:audio-" + strings.Repeat("a", MaxChunkRunes), "mp3:audio-fim"}, player.played)

	lang = "es"
	queries = nil
	require.NoError(t, tts.Speak(context.Background(), "hola"))
	assert.Equal(t, []string{"es|hola"}, queries)
}

func TestGoogleTranslateTTS_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		player := &recordingPlayer{}
		tts := NewGoogleTranslateTTS(server.URL, time.Second, player, func() string { return "en" }, nil)
		err := tts.Speak(context.Background(), "hello")
		assert.ErrorContains(t, err, "403")
		assert.Empty(t, player.played)
	})

	t.Run("player failure stops", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("x"))
		}))
		defer server.Close()

		boom := errors.New("no audio device")
		player := &recordingPlayer{err: boom}
		tts := NewGoogleTranslateTTS(server.URL, time.Second, player, func() string { return "en" }, nil)
		err := tts.Speak(context.Background(), strings.Repeat("b", MaxChunkRunes)+" c")
		assert.ErrorIs(t, err, boom)
		assert.Len(t, player.played, 1)
	})
}

func TestGoogleCloud_Request(t *testing.T) {
	g := NewGoogleCloud(config.GoogleCloudConfig{
		Voice:        "pt-PT-Standard-A",
		SpeakingRate: 1.25,
		Pitch:        -2,
	}, &recordingPlayer{}, func() string { return "pt" }, nil)

	req := g.request("olá", "pt")
	assert.Equal(t, "olá", req.GetInput().GetText())
	assert.Equal(t, "pt", req.GetVoice().GetLanguageCode())
	assert.Equal(t, "pt-PT-Standard-A", req.GetVoice().GetName())
	assert.Equal(t, 1.25, req.GetAudioConfig().GetSpeakingRate())
	assert.Equal(t, -2.0, req.GetAudioConfig().GetPitch())
}

func TestBeepPlayer_UnsupportedFormat(t *testing.T) {
	p := NewBeepPlayer(0)
	err := p.Play(context.Background(), "ogg", io.NopCloser(bytes.NewReader(nil)))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNew(t *testing.T) {
	cfg := config.DefaultConfig()

	sp, err := New(cfg, nil, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.IsType(t, &GoogleTranslateTTS{}, sp)

	cfg.Speech.Provider = config.SpeechGoogleCloud
	sp, err = New(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &GoogleCloud{}, sp)

	cfg.Speech.Provider = config.SpeechNone
	sp, err = New(cfg, nil, nil)
	require.NoError(t, err)
	assert.NoError(t, sp.Speak(context.Background(), "anything"))

	cfg.Speech.Provider = "carrier-pigeon"
	_, err = New(cfg, nil, nil)
	assert.Error(t, err)
}
