package format

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextStats returns the line and character counts shown under the text box.
// Lines are the number of newlines plus one; characters are runes.
func TextStats(text string) (lines, chars int) {
	return strings.Count(text, "\n") + 1, utf8.RuneCountInString(text)
}

// CountLabel renders TextStats as "L: <lines> C: <chars>"
func CountLabel(text string) string {
	lines, chars := TextStats(text)
	return fmt.Sprintf("L: %d C: %d", lines, chars)
}

// Preview flattens text to one line and truncates it to maxLen runes
func Preview(text string, maxLen int) string {
	preview := strings.ReplaceAll(text, "\r\n", " ")
	preview = strings.ReplaceAll(preview, "\n", " ")
	preview = strings.ReplaceAll(preview, "\r", " ")
	preview = strings.ReplaceAll(preview, "\t", " ")
	return TruncateText(preview, maxLen)
}
