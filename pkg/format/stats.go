package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/berrythewa/cliplate/internal/storage"
)

// FormatStats summarizes translation history
func FormatStats(records []*storage.TranslationRecord, opts Options) string {
	parts := []string{ColorizeIf("Translation Statistics", Title, opts.UseColors), ""}

	occurrences := 0
	byLang := make(map[string]int)
	for _, rec := range records {
		occurrences += len(rec.Occurrences)
		byLang[rec.TargetLang]++
	}

	parts = append(parts, formatStatLine("Total entries", fmt.Sprintf("%d", len(records)), opts))
	parts = append(parts, formatStatLine("Total translations", fmt.Sprintf("%d", occurrences), opts))

	if len(records) > 0 {
		oldest, newest := records[0].Created, records[0].Updated
		for _, rec := range records[1:] {
			if rec.Created.Before(oldest) {
				oldest = rec.Created
			}
			if rec.Updated.After(newest) {
				newest = rec.Updated
			}
		}
		parts = append(parts, formatStatLine("Oldest entry", FormatRelativeTime(oldest), opts))
		parts = append(parts, formatStatLine("Newest entry", FormatRelativeTime(newest), opts))
	}

	if len(byLang) > 0 {
		langs := make([]string, 0, len(byLang))
		for lang := range byLang {
			langs = append(langs, lang)
		}
		sort.Strings(langs)

		parts = append(parts, "", ColorizeIf("Entries by language", Title, opts.UseColors))
		for _, lang := range langs {
			parts = append(parts, fmt.Sprintf("  %s: %d", ColorizeIf(lang, Lang, opts.UseColors), byLang[lang]))
		}
	}

	return strings.Join(parts, "\n")
}

// formatStatLine formats a statistics line with label and value
func formatStatLine(label, value string, opts Options) string {
	return fmt.Sprintf("  %s %s", ColorizeIf(label+":", Label, opts.UseColors), value)
}
