package clipboard

import (
	"errors"
	"fmt"

	atottoClip "github.com/atotto/clipboard"
)

// AtottoProvider reads the clipboard through github.com/atotto/clipboard.
// atotto has no open/close protocol, so Open takes a snapshot of the text
// and Close discards it. Only Unicode text is ever reported.
type AtottoProvider struct {
	snapshot string
	open     bool
}

// NewAtottoProvider returns a provider backed by atotto/clipboard
func NewAtottoProvider() *AtottoProvider {
	return &AtottoProvider{}
}

func (p *AtottoProvider) Open() error {
	if atottoClip.Unsupported {
		return errors.New("no clipboard utility available")
	}
	text, err := atottoClip.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read clipboard: %w", err)
	}
	p.snapshot = text
	p.open = true
	return nil
}

func (p *AtottoProvider) Close() error {
	p.snapshot = ""
	p.open = false
	return nil
}

func (p *AtottoProvider) IsFormatAvailable(f Format) bool {
	return p.open && f == FormatUnicodeText && p.snapshot != ""
}

func (p *AtottoProvider) GetData(f Format) ([]byte, error) {
	if !p.open {
		return nil, ErrNotOpen
	}
	if !p.IsFormatAvailable(f) {
		return nil, ErrFormatUnavailable
	}
	return []byte(p.snapshot), nil
}
