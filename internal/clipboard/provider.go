package clipboard

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Backend names accepted by NewProvider
const (
	BackendAuto    = "auto"
	BackendWindows = "windows"
	BackendAtotto  = "atotto"
	BackendNative  = "native"
)

// ErrBackendUnavailable is returned when a backend cannot run on this platform
var ErrBackendUnavailable = errors.New("clipboard backend unavailable")

// NewProvider returns the clipboard provider for the named backend. "auto"
// picks the Win32 provider on Windows and atotto everywhere else.
func NewProvider(backend string, logger *zap.Logger) (Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	name := strings.ToLower(strings.TrimSpace(backend))
	if name == "" || name == BackendAuto {
		if runtime.GOOS == "windows" {
			name = BackendWindows
		} else {
			name = BackendAtotto
		}
	}

	logger.Debug("Selecting clipboard backend", zap.String("backend", name))

	switch name {
	case BackendWindows:
		return systemProvider(logger)
	case BackendAtotto:
		return NewAtottoProvider(), nil
	case BackendNative:
		return NewNativeProvider(), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}
