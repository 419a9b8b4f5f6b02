package clipboard

import (
	"fmt"
	"sync"

	xclip "golang.design/x/clipboard"
)

// NativeProvider reads the clipboard through golang.design/x/clipboard,
// which talks to the platform API directly instead of shelling out.
type NativeProvider struct {
	initOnce sync.Once
	initErr  error

	snapshot []byte
	open     bool
}

// NewNativeProvider returns a provider backed by golang.design/x/clipboard
func NewNativeProvider() *NativeProvider {
	return &NativeProvider{}
}

func (p *NativeProvider) Open() error {
	p.initOnce.Do(func() {
		p.initErr = xclip.Init()
	})
	if p.initErr != nil {
		return fmt.Errorf("failed to initialize native clipboard: %w", p.initErr)
	}
	p.snapshot = xclip.Read(xclip.FmtText)
	p.open = true
	return nil
}

func (p *NativeProvider) Close() error {
	p.snapshot = nil
	p.open = false
	return nil
}

func (p *NativeProvider) IsFormatAvailable(f Format) bool {
	return p.open && f == FormatUnicodeText && len(p.snapshot) > 0
}

func (p *NativeProvider) GetData(f Format) ([]byte, error) {
	if !p.open {
		return nil, ErrNotOpen
	}
	if !p.IsFormatAvailable(f) {
		return nil, ErrFormatUnavailable
	}
	return append([]byte(nil), p.snapshot...), nil
}
