//go:build !windows

package cmd

import (
	"fmt"
	"runtime"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/interfaces"
	"github.com/Norgate-AV/wincenter/internal/logger"
)

func platformBackend(_ logger.LoggerInterface) (interfaces.Desktop, error) {
	return nil, fmt.Errorf("%w: %s", desktop.ErrUnsupportedPlatform, runtime.GOOS)
}

func onConsoleClose(_ logger.LoggerInterface, _ func()) {}
