package clipboard

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/berrythewa/cliplate/internal/config"
	"go.uber.org/zap"
)

type TextFilter func(text string) bool
type TextTransformer func(text string) string

// TextProcessor combines filters and transformations applied to detected
// clipboard text before it is handed to a translator
type TextProcessor struct {
	filters      []TextFilter
	transformers []TextTransformer
	logger       *zap.Logger
}

// NewTextProcessor creates an empty text processor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextProcessor{logger: logger}
}

func (tp *TextProcessor) AddFilter(filter TextFilter) {
	tp.filters = append(tp.filters, filter)
}

func (tp *TextProcessor) AddTransformer(transformer TextTransformer) {
	tp.transformers = append(tp.transformers, transformer)
}

// Process applies all transformers, then all filters. The second return
// value is false when the text was rejected or became empty.
func (tp *TextProcessor) Process(text string) (string, bool) {
	for _, transformer := range tp.transformers {
		text = transformer(text)
	}
	if text == "" {
		return "", false
	}

	for i, filter := range tp.filters {
		if !filter(text) {
			tp.logger.Debug("Text rejected by filter",
				zap.Int("filter", i),
				zap.Int("chars", utf8.RuneCountInString(text)))
			return "", false
		}
	}
	return text, true
}

// TrimTransformer trims surrounding whitespace
func TrimTransformer() TextTransformer {
	return strings.TrimSpace
}

// NewlineTransformer converts CRLF and CR line endings to LF
func NewlineTransformer() TextTransformer {
	replacer := strings.NewReplacer("\r\n", "\n", "\r", "\n")
	return replacer.Replace
}

// MaxLengthFilter rejects text longer than maxChars runes. Zero disables it.
func MaxLengthFilter(maxChars int) TextFilter {
	return func(text string) bool {
		return maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars
	}
}

// IgnorePatternFilter rejects text matching the pattern
func IgnorePatternFilter(pattern string) (TextFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
	}
	return func(text string) bool {
		return !re.MatchString(text)
	}, nil
}

// ProcessorFromConfig builds the processor described by the clipboard
// configuration. Line endings are always normalized.
func ProcessorFromConfig(cfg config.ClipboardConfig, logger *zap.Logger) (*TextProcessor, error) {
	tp := NewTextProcessor(logger)
	tp.AddTransformer(NewlineTransformer())
	if cfg.Trim {
		tp.AddTransformer(TrimTransformer())
	}
	tp.AddFilter(MaxLengthFilter(cfg.MaxChars))
	for _, pattern := range cfg.IgnorePatterns {
		filter, err := IgnorePatternFilter(pattern)
		if err != nil {
			return nil, err
		}
		tp.AddFilter(filter)
	}
	return tp, nil
}
