package clipboard

import (
	"strings"
	"testing"

	"github.com/berrythewa/cliplate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextProcessor_Process(t *testing.T) {
	tp := NewTextProcessor(nil)
	tp.AddTransformer(NewlineTransformer())
	tp.AddTransformer(TrimTransformer())
	tp.AddFilter(MaxLengthFilter(10))

	ignore, err := IgnorePatternFilter(`^\d+$`)
	require.NoError(t, err)
	tp.AddFilter(ignore)

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"trimmed", "  hello \r\n", "hello", true},
		{"crlf normalized", "a\r\nb", "a\nb", true},
		{"whitespace only", " \t\n", "", false},
		{"too long", strings.Repeat("x", 11), "", false},
		{"multibyte counted as runes", strings.Repeat("é", 10), strings.Repeat("é", 10), true},
		{"ignored pattern", "123456", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tp.Process(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIgnorePatternFilter_Invalid(t *testing.T) {
	_, err := IgnorePatternFilter("(")
	assert.Error(t, err)
}

func TestMaxLengthFilter_Disabled(t *testing.T) {
	assert.True(t, MaxLengthFilter(0)(strings.Repeat("x", 100000)))
}

func TestProcessorFromConfig(t *testing.T) {
	tp, err := ProcessorFromConfig(config.ClipboardConfig{
		MaxChars:       20,
		IgnorePatterns: []string{`^https?://`},
	}, nil)
	require.NoError(t, err)

	got, ok := tp.Process("a\r\nb")
	assert.True(t, ok)
	assert.Equal(t, "a\nb", got)

	got, ok = tp.Process(" ab ")
	assert.True(t, ok)
	assert.Equal(t, " ab ", got, "trim disabled")

	_, ok = tp.Process("http://x")
	assert.False(t, ok)

	_, err = ProcessorFromConfig(config.ClipboardConfig{IgnorePatterns: []string{"["}}, nil)
	assert.Error(t, err)
}
