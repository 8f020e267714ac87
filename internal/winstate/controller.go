// Package winstate implements restore, minimize, maximize, foreground,
// always-on-top and close primitives on top-level windows.
package winstate

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/interfaces"
	"github.com/Norgate-AV/wincenter/internal/logger"
)

// Controller applies show-state and z-order changes. Every primitive is
// idempotent and reports a vanished window as desktop.ErrHandleInvalid.
type Controller struct {
	win interfaces.StateSetter
	log logger.LoggerInterface
}

// New creates a controller over the given backend
func New(win interfaces.StateSetter, log logger.LoggerInterface) *Controller {
	return &Controller{win: win, log: log}
}

func (c *Controller) checkHandle(h desktop.Handle) error {
	if !c.win.IsWindow(h) {
		return fmt.Errorf("window %s: %w", h, desktop.ErrHandleInvalid)
	}

	return nil
}

func (c *Controller) show(h desktop.Handle, cmd desktop.ShowCommand) error {
	if err := c.checkHandle(h); err != nil {
		return err
	}

	c.log.Debug("Changing window show state",
		slog.String("hwnd", h.String()),
		slog.String("command", cmd.String()),
	)

	if err := c.win.Show(h, cmd); err != nil {
		return fmt.Errorf("failed to %s window %s: %w", cmd, h, err)
	}

	return nil
}

// Restore returns a minimized or maximized window to its normal placement
func (c *Controller) Restore(h desktop.Handle) error {
	return c.show(h, desktop.ShowRestore)
}

func (c *Controller) Minimize(h desktop.Handle) error {
	return c.show(h, desktop.ShowMinimize)
}

func (c *Controller) Maximize(h desktop.Handle) error {
	return c.show(h, desktop.ShowMaximize)
}

// RestoreIfMinimized restores the window only when it is iconic, leaving
// maximized and normal windows untouched
func (c *Controller) RestoreIfMinimized(h desktop.Handle) error {
	if err := c.checkHandle(h); err != nil {
		return err
	}

	if !c.win.IsMinimized(h) {
		return nil
	}

	return c.show(h, desktop.ShowRestore)
}

// BringToFront restores a minimized window and asks for foreground focus.
// The OS may deny the focus change; that is logged and not an error.
func (c *Controller) BringToFront(h desktop.Handle) error {
	if err := c.RestoreIfMinimized(h); err != nil {
		return err
	}

	if !c.win.RequestForeground(h) {
		c.log.Debug("Foreground request denied, window restored only",
			slog.String("hwnd", h.String()),
			slog.Any("reason", desktop.ErrForegroundDenied),
		)
	}

	return nil
}

// SetTopmost toggles the always-on-top flag without moving or resizing
func (c *Controller) SetTopmost(h desktop.Handle, topmost bool) error {
	if err := c.checkHandle(h); err != nil {
		return err
	}

	if err := c.win.SetTopmost(h, topmost); err != nil {
		return fmt.Errorf("failed to set topmost=%t on window %s: %w", topmost, h, err)
	}

	c.log.Debug("Topmost changed", slog.String("hwnd", h.String()), slog.Bool("topmost", topmost))
	return nil
}

// RequestClose posts an asynchronous close request. It does not wait for the
// window to close, and the target may ignore or cancel it; re-list to
// observe the effect.
func (c *Controller) RequestClose(h desktop.Handle) error {
	if err := c.checkHandle(h); err != nil {
		return err
	}

	if err := c.win.PostClose(h); err != nil {
		return fmt.Errorf("failed to post close to window %s: %w", h, err)
	}

	c.log.Debug("Close requested", slog.String("hwnd", h.String()))
	return nil
}
