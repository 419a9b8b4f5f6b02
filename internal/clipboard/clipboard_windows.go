//go:build windows
// +build windows

package clipboard

import (
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	cfText        = 1
	cfUnicodeText = 13
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard              = user32.NewProc("OpenClipboard")
	procCloseClipboard             = user32.NewProc("CloseClipboard")
	procIsClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	procGetClipboardData           = user32.NewProc("GetClipboardData")

	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalSize   = kernel32.NewProc("GlobalSize")
)

// WindowsProvider is the Win32 clipboard. The clipboard is owned by the
// thread that opened it, so the calling goroutine is locked to its OS
// thread between Open and Close.
type WindowsProvider struct {
	logger      *zap.Logger
	openRetries int
	retryDelay  time.Duration
	open        bool
}

// NewWindowsProvider creates the Win32 clipboard provider
func NewWindowsProvider(logger *zap.Logger) *WindowsProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WindowsProvider{
		logger:      logger,
		openRetries: 3,
		retryDelay:  20 * time.Millisecond,
	}
}

func (p *WindowsProvider) Open() error {
	runtime.LockOSThread()

	var lastErr error
	for attempt := 0; attempt <= p.openRetries; attempt++ {
		r, _, err := procOpenClipboard.Call(0)
		if r != 0 {
			p.open = true
			return nil
		}
		lastErr = err
		p.logger.Debug("OpenClipboard failed, clipboard may be held by another process",
			zap.Int("attempt", attempt+1),
			zap.Error(err))
		time.Sleep(p.retryDelay)
	}

	runtime.UnlockOSThread()
	return fmt.Errorf("OpenClipboard: %w", lastErr)
}

func (p *WindowsProvider) Close() error {
	if !p.open {
		return ErrNotOpen
	}
	p.open = false
	defer runtime.UnlockOSThread()

	if r, _, err := procCloseClipboard.Call(); r == 0 {
		return fmt.Errorf("CloseClipboard: %w", err)
	}
	return nil
}

func (p *WindowsProvider) IsFormatAvailable(f Format) bool {
	cf, ok := nativeFormat(f)
	if !ok || !p.open {
		return false
	}
	r, _, _ := procIsClipboardFormatAvailable.Call(cf)
	return r != 0
}

func (p *WindowsProvider) GetData(f Format) ([]byte, error) {
	if !p.open {
		return nil, ErrNotOpen
	}
	cf, ok := nativeFormat(f)
	if !ok {
		return nil, ErrFormatUnavailable
	}

	h, _, err := procGetClipboardData.Call(cf)
	if h == 0 {
		return nil, fmt.Errorf("GetClipboardData: %w", err)
	}

	ptr, _, err := procGlobalLock.Call(h)
	if ptr == 0 {
		return nil, fmt.Errorf("GlobalLock: %w", err)
	}
	defer procGlobalUnlock.Call(h)

	size, _, _ := procGlobalSize.Call(h)

	switch f {
	case FormatUnicodeText:
		units := unsafe.Slice((*uint16)(unsafe.Pointer(ptr)), size/2)
		return []byte(windows.UTF16ToString(units)), nil
	default:
		raw := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size)
		for i, b := range raw {
			if b == 0 {
				raw = raw[:i]
				break
			}
		}
		return append([]byte(nil), raw...), nil
	}
}

func nativeFormat(f Format) (uintptr, bool) {
	switch f {
	case FormatUnicodeText:
		return cfUnicodeText, true
	case FormatText:
		return cfText, true
	default:
		return 0, false
	}
}

func systemProvider(logger *zap.Logger) (Provider, error) {
	return NewWindowsProvider(logger), nil
}
