package speech

import (
	"strings"
	"unicode/utf8"
)

// splitChunks splits text into pieces of at most max runes, breaking on
// whitespace. Words longer than max are cut at rune boundaries.
func splitChunks(text string, max int) []string {
	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)

		for wordLen > max {
			flush()
			runes := []rune(word)
			chunks = append(chunks, string(runes[:max]))
			word = string(runes[max:])
			wordLen -= max
		}
		if wordLen == 0 {
			continue
		}

		if curLen > 0 && curLen+1+wordLen > max {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += wordLen
	}
	flush()
	return chunks
}
