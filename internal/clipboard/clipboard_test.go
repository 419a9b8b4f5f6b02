package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name       string
		tick       tick
		want       string
		wantErr    error
		wantCloses int
	}{
		{
			name:       "unicode text",
			tick:       tick{text: "olá mundo"},
			want:       "olá mundo",
			wantCloses: 1,
		},
		{
			name:       "unicode preferred over legacy",
			tick:       tick{text: "unicode", legacy: []byte("legacy")},
			want:       "unicode",
			wantCloses: 1,
		},
		{
			name:       "legacy text decoded as latin-1",
			tick:       tick{legacy: []byte{'c', 'a', 'f', 0xE9}},
			want:       "café",
			wantCloses: 1,
		},
		{
			name:       "no text format",
			tick:       tick{},
			want:       "",
			wantCloses: 1,
		},
		{
			name:       "get data failure still closes",
			tick:       tick{text: "x", getErr: errAccessDenied},
			wantErr:    errAccessDenied,
			wantCloses: 1,
		},
		{
			name:       "open failure does not close",
			tick:       tick{openErr: errAccessDenied},
			wantErr:    errAccessDenied,
			wantCloses: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newFakeProvider(tt.tick)

			got, err := ReadText(p)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Empty(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantCloses, p.closes)
			assert.False(t, p.open, "clipboard left open")
		})
	}
}

func TestReadText_CloseFailure(t *testing.T) {
	closeErr := errors.New("close failed")
	p := newFakeProvider(tick{text: "hello", closeErr: closeErr})

	got, err := ReadText(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, closeErr)
	assert.Empty(t, got)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(BackendAtotto, nil)
	require.NoError(t, err)
	assert.IsType(t, &AtottoProvider{}, p)

	p, err = NewProvider(BackendNative, nil)
	require.NoError(t, err)
	assert.IsType(t, &NativeProvider{}, p)

	_, err = NewProvider("carrier-pigeon", nil)
	assert.Error(t, err)
}

func TestAtottoProvider_ClosedQueries(t *testing.T) {
	p := NewAtottoProvider()
	assert.False(t, p.IsFormatAvailable(FormatUnicodeText))

	_, err := p.GetData(FormatUnicodeText)
	assert.ErrorIs(t, err, ErrNotOpen)
}
