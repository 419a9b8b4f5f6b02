//go:build !windows
// +build !windows

package clipboard

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

func systemProvider(logger *zap.Logger) (Provider, error) {
	return nil, fmt.Errorf("%w: win32 clipboard on %s", ErrBackendUnavailable, runtime.GOOS)
}
