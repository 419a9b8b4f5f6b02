package translate

import (
	"fmt"

	"github.com/berrythewa/cliplate/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a selectable target language
type Language struct {
	Code string
	Name string
}

// NormalizeLanguage validates a language code and returns its canonical tag
func NormalizeLanguage(code string) (string, error) {
	normalized, err := config.NormalizeLanguage(code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedLanguage, err)
	}
	return normalized, nil
}

// Languages resolves English display names for the given codes, skipping
// codes that do not parse.
func Languages(codes []string) []Language {
	langs := make([]Language, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		langs = append(langs, Language{Code: tag.String(), Name: DisplayName(tag.String())})
	}
	return langs
}

// DisplayName returns the English name of a language code, or the code itself
// when no name is known.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
