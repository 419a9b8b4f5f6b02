package format

import "github.com/fatih/color"

// Options controls formatting behavior
type Options struct {
	UseColors    bool
	MaxWidth     int  // Max text width in runes (0 = no limit)
	MaxLines     int  // Max text lines (0 = no limit)
	ShowMetadata bool // Show languages, provider, timestamps
	Compact      bool // Use compact single-line format
}

// DefaultOptions returns sensible defaults. Colors follow the terminal.
func DefaultOptions() Options {
	return Options{
		UseColors:    !color.NoColor,
		MaxWidth:     80,
		MaxLines:     10,
		ShowMetadata: true,
		Compact:      false,
	}
}

// CompactOptions returns options for compact single-line display
func CompactOptions() Options {
	opts := DefaultOptions()
	opts.Compact = true
	opts.ShowMetadata = false
	opts.MaxLines = 1
	return opts
}
