package theme

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme extends the default Fyne theme with a switchable text font
type CustomTheme struct {
	fyne.Theme

	mu        sync.RWMutex
	fontName  string
	regular   fyne.Resource
	monospace bool
}

// NewCustomTheme creates a new custom theme
func NewCustomTheme() *CustomTheme {
	return &CustomTheme{
		Theme: theme.DefaultTheme(),
	}
}

// SetFont switches the regular text face. path may be empty, in which case
// the built-in face is used (monospaced when monospace is set).
func (t *CustomTheme) SetFont(name, path string, monospace bool) error {
	var res fyne.Resource
	if path != "" {
		loaded, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			return fmt.Errorf("failed to load font %q: %w", name, err)
		}
		res = loaded
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.fontName = name
	t.regular = res
	t.monospace = monospace
	return nil
}

// FontName returns the name of the selected font
func (t *CustomTheme) FontName() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fontName
}

// Font returns the selected face for regular text and defers to the
// default theme for every other style
func (t *CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	t.mu.RLock()
	regular, monospace := t.regular, t.monospace
	t.mu.RUnlock()

	if style.Bold || style.Italic || style.Symbol {
		return t.Theme.Font(style)
	}
	if regular != nil {
		return regular
	}
	if monospace {
		return t.Theme.Font(fyne.TextStyle{Monospace: true})
	}
	return t.Theme.Font(style)
}

// Color returns a custom color for the given name
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0, G: 120, B: 212, A: 255}
	default:
		return t.Theme.Color(name, variant)
	}
}

// Size returns a custom size for the given name
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	default:
		return t.Theme.Size(name)
	}
}
