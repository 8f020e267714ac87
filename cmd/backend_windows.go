//go:build windows

package cmd

import (
	"log/slog"

	"github.com/Norgate-AV/wincenter/internal/interfaces"
	"github.com/Norgate-AV/wincenter/internal/logger"
	"github.com/Norgate-AV/wincenter/internal/windows"
)

func platformBackend(log logger.LoggerInterface) (interfaces.Desktop, error) {
	if err := windows.EnableDPIAwareness(); err != nil {
		log.Debug("DPI awareness not enabled, coordinates may be scaled", slog.Any("error", err))
	}

	log.Debug("Backend ready", slog.Bool("elevated", windows.IsElevated()))

	return windows.NewClient(log), nil
}

// onConsoleClose runs stop when the console window is closed or the user
// logs off
func onConsoleClose(log logger.LoggerInterface, stop func()) {
	err := windows.OnConsoleClose(func(ctrlType uint32) {
		log.Debug("Received console control event",
			slog.String("type", windows.GetCtrlTypeName(ctrlType)),
			slog.Uint64("code", uint64(ctrlType)),
		)
		stop()
	})
	if err != nil {
		log.Debug("Console control handler not installed", slog.Any("error", err))
	}
}
