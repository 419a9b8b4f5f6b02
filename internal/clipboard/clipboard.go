package clipboard

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Format identifies a clipboard data format a Provider can be queried for.
type Format int

const (
	// FormatUnicodeText is Unicode text. Providers return it as UTF-8.
	FormatUnicodeText Format = iota + 1
	// FormatText is legacy single-byte text, returned raw.
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatUnicodeText:
		return "unicode-text"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

var (
	// ErrFormatUnavailable is returned by GetData when the clipboard holds no data in the requested format.
	ErrFormatUnavailable = errors.New("clipboard format unavailable")
	// ErrNotOpen is returned when a Provider is queried outside an Open/Close pair.
	ErrNotOpen = errors.New("clipboard is not open")
)

// Provider is the OS clipboard as seen by the watcher. Every GetData and
// IsFormatAvailable call happens between a successful Open and its Close.
type Provider interface {
	Open() error
	Close() error
	IsFormatAvailable(f Format) bool
	GetData(f Format) ([]byte, error)
}

// ReadText returns the current clipboard text. Unicode text is preferred;
// legacy text is decoded as ISO-8859-1. An empty string with a nil error
// means no supported text format is present.
//
// The clipboard is closed on every path once Open has succeeded.
func ReadText(p Provider) (text string, err error) {
	if err := p.Open(); err != nil {
		return "", fmt.Errorf("failed to open clipboard: %w", err)
	}
	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			text, err = "", fmt.Errorf("failed to close clipboard: %w", cerr)
		}
	}()

	switch {
	case p.IsFormatAvailable(FormatUnicodeText):
		data, err := p.GetData(FormatUnicodeText)
		if err != nil {
			return "", fmt.Errorf("failed to get %s data: %w", FormatUnicodeText, err)
		}
		return string(data), nil

	case p.IsFormatAvailable(FormatText):
		data, err := p.GetData(FormatText)
		if err != nil {
			return "", fmt.Errorf("failed to get %s data: %w", FormatText, err)
		}
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode %s data: %w", FormatText, err)
		}
		return string(decoded), nil
	}

	return "", nil
}
