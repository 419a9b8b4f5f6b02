package format

import "github.com/fatih/color"

// Palette used by the formatters
var (
	Title  = color.New(color.FgHiBlue, color.Bold)
	Label  = color.New(color.FgHiCyan)
	Source = color.New(color.FgYellow)
	Target = color.New(color.FgGreen)
	Lang   = color.New(color.FgMagenta)
	Faint  = color.New(color.Faint)
)

// ColorizeIf applies c only if useColors is true. Colors are forced on when
// requested so output piped through a pager keeps them.
func ColorizeIf(text string, c *color.Color, useColors bool) string {
	if !useColors || text == "" {
		return text
	}
	forced := *c
	forced.EnableColor()
	return forced.Sprint(text)
}

// DimIf applies the faint attribute only if useColors is true
func DimIf(text string, useColors bool) string {
	return ColorizeIf(text, Faint, useColors)
}
