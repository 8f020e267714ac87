//go:build windows

package windows

import (
	"fmt"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/interfaces"
	"github.com/Norgate-AV/wincenter/internal/logger"
)

// Client implements interfaces.Desktop on the Win32 API.
// It composes specialized managers for different categories of functionality
type Client struct {
	log    logger.LoggerInterface
	Window *windowManager
	Icons  *iconReader
}

var _ interfaces.Desktop = (*Client)(nil)

// NewClient creates a new Windows API client
func NewClient(log logger.LoggerInterface) *Client {
	return &Client{
		log:    log,
		Window: newWindowManager(log),
		Icons:  newIconReader(log),
	}
}

// invalid wraps err with ErrHandleInvalid when the window is gone
func invalid(h desktop.Handle, err error) error {
	if !IsWindow(uintptr(h)) {
		return fmt.Errorf("window %s: %w: %w", h, desktop.ErrHandleInvalid, err)
	}

	return err
}

func (c *Client) IsWindow(h desktop.Handle) bool {
	return IsWindow(uintptr(h))
}

func (c *Client) EnumerateWindows() ([]desktop.Handle, error) {
	hwnds, err := EnumerateWindows()
	if err != nil {
		return nil, err
	}

	handles := make([]desktop.Handle, len(hwnds))
	for i, hwnd := range hwnds {
		handles[i] = desktop.Handle(hwnd)
	}

	return handles, nil
}

func (c *Client) IsVisible(h desktop.Handle) bool {
	return IsWindowVisible(uintptr(h))
}

func (c *Client) WindowText(h desktop.Handle) (string, error) {
	return GetWindowText(uintptr(h))
}

func (c *Client) ClassName(h desktop.Handle) (string, error) {
	name, err := GetClassName(uintptr(h))
	if err != nil {
		return "", invalid(h, err)
	}

	return name, nil
}

func (c *Client) ProcessID(h desktop.Handle) (uint32, error) {
	pid, err := GetWindowPid(uintptr(h))
	if err != nil {
		return 0, invalid(h, err)
	}

	return pid, nil
}

func (c *Client) OuterRect(h desktop.Handle) (desktop.Rect, error) {
	r, err := GetWindowRect(uintptr(h))
	if err != nil {
		return desktop.Rect{}, invalid(h, err)
	}

	return r, nil
}

func (c *Client) VisualFrameRect(h desktop.Handle) (desktop.Rect, error) {
	return GetExtendedFrameBounds(uintptr(h))
}

func (c *Client) MonitorInfo(h desktop.Handle) (desktop.MonitorInfo, error) {
	return GetMonitorInfo(uintptr(h))
}

func (c *Client) SetPosition(h desktop.Handle, x, y int) error {
	return c.Window.SetPosition(uintptr(h), x, y)
}

func (c *Client) NotifyMoveBegin(h desktop.Handle) error {
	return c.Window.PostMoveMessage(uintptr(h), WM_ENTERSIZEMOVE)
}

func (c *Client) NotifyMoveEnd(h desktop.Handle) error {
	return c.Window.PostMoveMessage(uintptr(h), WM_EXITSIZEMOVE)
}

func (c *Client) IsMinimized(h desktop.Handle) bool {
	return IsIconic(uintptr(h))
}

func (c *Client) Show(h desktop.Handle, cmd desktop.ShowCommand) error {
	return c.Window.Show(uintptr(h), cmd)
}

func (c *Client) RequestForeground(h desktop.Handle) bool {
	return c.Window.SetForeground(uintptr(h))
}

func (c *Client) SetTopmost(h desktop.Handle, topmost bool) error {
	return c.Window.SetTopmost(uintptr(h), topmost)
}

func (c *Client) PostClose(h desktop.Handle) error {
	return c.Window.PostClose(uintptr(h))
}

func (c *Client) MessageIcon(h desktop.Handle, kind desktop.MessageIconKind) (desktop.IconHandle, error) {
	return c.Icons.MessageIcon(uintptr(h), kind)
}

func (c *Client) ClassIcon(h desktop.Handle, kind desktop.ClassIconKind) (desktop.IconHandle, error) {
	return c.Icons.ClassIcon(uintptr(h), kind)
}

func (c *Client) Rasterize(icon desktop.IconHandle, size int) (desktop.Bitmap, error) {
	return c.Icons.Rasterize(icon, size)
}
