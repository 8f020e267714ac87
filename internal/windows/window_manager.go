//go:build windows

package windows

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	xwin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/logger"
	"github.com/Norgate-AV/wincenter/internal/timeouts"
)

// windowManager changes window position, show state and z-order
type windowManager struct {
	log logger.LoggerInterface
}

// newWindowManager creates a new window manager
func newWindowManager(log logger.LoggerInterface) *windowManager {
	return &windowManager{log: log}
}

// SetPosition moves the window's outer rectangle origin to (x, y) without
// resizing or activating it
func (w *windowManager) SetPosition(hwnd uintptr, x, y int) error {
	ret, _, err := procSetWindowPos.Call(
		hwnd,
		HWND_TOP,
		uintptr(x),
		uintptr(y),
		0,
		0,
		SWP_NOSIZE|SWP_NOACTIVATE,
	)
	if ret != 0 {
		return nil
	}

	// UIPI blocks moving windows of elevated processes from a normal one
	if errors.Is(err, xwin.ERROR_ACCESS_DENIED) && !IsElevated() {
		return fmt.Errorf("SetWindowPos failed: %w (the window may belong to an elevated process)", err)
	}

	return fmt.Errorf("SetWindowPos failed: %w", err)
}

// PostMoveMessage posts WM_ENTERSIZEMOVE or WM_EXITSIZEMOVE. The message is
// queued; whether the window handles it is up to the window.
func (w *windowManager) PostMoveMessage(hwnd uintptr, msg uintptr) error {
	ret, _, err := procPostMessageW.Call(hwnd, msg, 0, 0)
	if ret == 0 {
		return fmt.Errorf("PostMessage 0x%04X failed: %w", msg, err)
	}

	return nil
}

// Show applies a show command. ShowWindow reports the previous visibility,
// not success, so only an invalid handle is an error.
func (w *windowManager) Show(hwnd uintptr, cmd desktop.ShowCommand) error {
	var sw uintptr

	switch cmd {
	case desktop.ShowRestore:
		sw = SW_RESTORE
	case desktop.ShowMinimize:
		sw = SW_MINIMIZE
	case desktop.ShowMaximize:
		sw = SW_MAXIMIZE
	default:
		return fmt.Errorf("%w: show command %d", desktop.ErrInvalidArgument, cmd)
	}

	ret, _, _ := procShowWindow.Call(hwnd, sw)
	w.log.Trace("ShowWindow", slog.String("command", cmd.String()), slog.Uint64("ret", uint64(ret)))

	if !IsWindow(hwnd) {
		return desktop.ErrHandleInvalid
	}

	return nil
}

// SetForeground brings a window to the foreground using AttachThreadInput technique
func (w *windowManager) SetForeground(hwnd uintptr) bool {
	// Try standard SetForegroundWindow first
	ret, _, _ := procSetForegroundWindow.Call(hwnd)
	if ret != 0 {
		w.log.Debug("SetForegroundWindow succeeded (standard)")
		return w.verifyForeground(hwnd)
	}

	w.log.Debug("Standard SetForegroundWindow failed, trying AttachThreadInput technique")

	// Get current foreground window and its thread
	fgHwnd, _, _ := procGetForegroundWindow.Call()
	if fgHwnd == 0 || fgHwnd == hwnd {
		w.log.Debug("No foreground window or already focused")
		return fgHwnd == hwnd
	}

	fgThreadID := getWindowThread(fgHwnd)
	targetThreadID := getWindowThread(hwnd)

	if fgThreadID == 0 || targetThreadID == 0 {
		w.log.Debug("Could not get thread IDs",
			slog.Uint64("fgThreadID", uint64(fgThreadID)),
			slog.Uint64("targetThreadID", uint64(targetThreadID)))
		return false
	}

	w.log.Debug("Attaching threads",
		slog.Uint64("fgThreadID", uint64(fgThreadID)),
		slog.Uint64("targetThreadID", uint64(targetThreadID)))

	ret, _, _ = procAttachThreadInput.Call(targetThreadID, fgThreadID, 1)
	if ret == 0 {
		w.log.Debug("AttachThreadInput failed")
		return false
	}

	ret, _, _ = procSetForegroundWindow.Call(hwnd)
	success := ret != 0

	ret, _, _ = procAttachThreadInput.Call(targetThreadID, fgThreadID, 0)
	if ret == 0 {
		w.log.Warn("Failed to detach threads")
	}

	if success {
		w.log.Debug("SetForegroundWindow succeeded (with AttachThreadInput)")
		return w.verifyForeground(hwnd)
	}

	w.log.Debug("SetForegroundWindow still failed after AttachThreadInput")
	return false
}

// verifyForeground checks if the window is now in foreground
func (w *windowManager) verifyForeground(hwnd uintptr) bool {
	time.Sleep(timeouts.ForegroundSettleDelay)

	fgHwnd, _, _ := procGetForegroundWindow.Call()
	if fgHwnd == hwnd {
		return true
	}

	w.log.Debug("Different window in foreground",
		slog.String("expected", desktop.Handle(hwnd).String()),
		slog.String("got", desktop.Handle(fgHwnd).String()))

	return false
}

// SetTopmost toggles the always-on-top flag without moving, sizing or
// activating the window
func (w *windowManager) SetTopmost(hwnd uintptr, topmost bool) error {
	insertAfter := HWND_NOTOPMOST
	if topmost {
		insertAfter = HWND_TOPMOST
	}

	ret, _, err := procSetWindowPos.Call(hwnd, insertAfter, 0, 0, 0, 0, SWP_NOMOVE|SWP_NOSIZE|SWP_NOACTIVATE)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", err)
	}

	return nil
}

// PostClose posts WM_CLOSE and returns without waiting
func (w *windowManager) PostClose(hwnd uintptr) error {
	w.log.Debug("Closing window", slog.String("hwnd", desktop.Handle(hwnd).String()))

	ret, _, err := procPostMessageW.Call(hwnd, WM_CLOSE, 0, 0)
	if ret == 0 {
		return fmt.Errorf("PostMessage WM_CLOSE failed: %w", err)
	}

	return nil
}
