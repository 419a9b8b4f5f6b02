package format

import (
	"fmt"
	"strings"

	"github.com/berrythewa/cliplate/internal/storage"
)

// Formatter renders translation history for the terminal
type Formatter struct {
	options Options
}

// New creates a new formatter with the given options
func New(opts Options) *Formatter {
	return &Formatter{
		options: opts,
	}
}

// NewDefault creates a new formatter with default options
func NewDefault() *Formatter {
	return New(DefaultOptions())
}

// FormatRecord formats a single translation record
func (f *Formatter) FormatRecord(rec *storage.TranslationRecord) string {
	if rec == nil {
		return DimIf("No translation", f.options.UseColors)
	}

	if f.options.Compact {
		return fmt.Sprintf("%s %s %s %s",
			f.formatLangs(rec),
			ColorizeIf(Preview(rec.Source, f.previewWidth()), Source, f.options.UseColors),
			DimIf("→", f.options.UseColors),
			ColorizeIf(Preview(rec.Text, f.previewWidth()), Target, f.options.UseColors))
	}

	parts := []string{f.formatLangs(rec)}
	parts = append(parts, IndentText(ColorizeIf(f.limit(rec.Source), Source, f.options.UseColors), "  "))
	parts = append(parts, IndentText(ColorizeIf(f.limit(rec.Text), Target, f.options.UseColors), "  "))
	if f.options.ShowMetadata {
		parts = append(parts, f.formatMetadata(rec))
	}
	return strings.Join(parts, "\n")
}

// FormatRecordList formats history entries, most recent first
func (f *Formatter) FormatRecordList(records []*storage.TranslationRecord) string {
	if len(records) == 0 {
		return DimIf("No translation history", f.options.UseColors)
	}

	var parts []string
	title := fmt.Sprintf("Translation History (%d entries)", len(records))
	parts = append(parts, ColorizeIf(title, Title, f.options.UseColors), "")

	for i, rec := range records {
		index := DimIf(fmt.Sprintf("[%d]", i+1), f.options.UseColors)
		if f.options.Compact {
			parts = append(parts, fmt.Sprintf("%s %s", index, f.FormatRecord(rec)))
			continue
		}
		parts = append(parts, index, f.FormatRecord(rec))
		if i < len(records)-1 {
			parts = append(parts, CreateSeparator(f.options))
		}
	}
	return strings.Join(parts, "\n")
}

func (f *Formatter) formatLangs(rec *storage.TranslationRecord) string {
	from := rec.SourceLang
	if from == "" {
		from = "auto"
	}
	return ColorizeIf(fmt.Sprintf("%s → %s", from, rec.TargetLang), Lang, f.options.UseColors)
}

func (f *Formatter) formatMetadata(rec *storage.TranslationRecord) string {
	var parts []string
	if rec.Provider != "" {
		parts = append(parts, "Provider: "+rec.Provider)
	}
	parts = append(parts, "Last used: "+FormatRelativeTime(rec.Updated))
	if n := len(rec.Occurrences); n > 1 {
		parts = append(parts, fmt.Sprintf("Occurrences: %d", n))
	}
	parts = append(parts, CountLabel(rec.Text))
	return DimIf(strings.Join(parts, " • "), f.options.UseColors)
}

func (f *Formatter) limit(text string) string {
	if f.options.MaxLines > 0 {
		text = TruncateLines(text, f.options.MaxLines)
	}
	if f.options.MaxWidth > 0 {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = TruncateText(line, f.options.MaxWidth)
		}
		text = strings.Join(lines, "\n")
	}
	return text
}

func (f *Formatter) previewWidth() int {
	if f.options.MaxWidth > 0 {
		return f.options.MaxWidth / 2
	}
	return 40
}

// FormatRecordList formats history entries with the given options
func FormatRecordList(records []*storage.TranslationRecord, opts Options) string {
	return New(opts).FormatRecordList(records)
}
