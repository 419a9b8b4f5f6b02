package speech

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{"empty", "", 10, nil},
		{"whitespace only", "  \n\t ", 10, nil},
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks on words", "one two three four", 9, []string{"one two", "three", "four"}},
		{"collapses whitespace", "a\n\nb\tc", 10, []string{"a b c"}},
		{"long word is cut", "abcdefghij xy", 4, []string{"abcd", "efgh", "ij", "xy"}},
		{"counts runes", "ção ção ção", 7, []string{"ção ção", "ção"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitChunks(tt.text, tt.max)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitChunks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitChunks_RespectsLimit(t *testing.T) {
	text := strings.Repeat("palavra ", 120)
	chunks := splitChunks(text, MaxChunkRunes)

	if len(chunks) < 2 {
		t.Fatalf("expected several chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > MaxChunkRunes {
			t.Errorf("chunk %d has %d runes", i, n)
		}
	}
	if got := strings.Join(chunks, " "); got != strings.TrimSpace(text) {
		t.Errorf("chunks do not reassemble the text")
	}
}
