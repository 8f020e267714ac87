// Package interfaces defines the OS windowing boundary consumed by the
// directory, placement, state and icon packages.
package interfaces

import "github.com/Norgate-AV/wincenter/internal/desktop"

// HandleChecker reports whether a window handle still refers to a live window
type HandleChecker interface {
	IsWindow(h desktop.Handle) bool
}

// WindowSource enumerates top-level windows and reads their metadata
type WindowSource interface {
	HandleChecker
	EnumerateWindows() ([]desktop.Handle, error)
	IsVisible(h desktop.Handle) bool
	WindowText(h desktop.Handle) (string, error)
	ClassName(h desktop.Handle) (string, error)
	ProcessID(h desktop.Handle) (uint32, error)
}

// ProcessNamer resolves a process id to its executable name
type ProcessNamer interface {
	ProcessName(pid uint32) (string, error)
}

// GeometryReader reads window and monitor rectangles
type GeometryReader interface {
	HandleChecker
	// OuterRect includes any invisible drop shadow
	OuterRect(h desktop.Handle) (desktop.Rect, error)
	// VisualFrameRect is the compositor-corrected visible frame
	VisualFrameRect(h desktop.Handle) (desktop.Rect, error)
	// MonitorInfo returns the monitor nearest to the window
	MonitorInfo(h desktop.Handle) (desktop.MonitorInfo, error)
}

// WindowMover repositions windows and delivers move notifications
type WindowMover interface {
	HandleChecker
	// SetPosition moves the outer rectangle origin without resizing or
	// activating the window
	SetPosition(h desktop.Handle, x, y int) error
	NotifyMoveBegin(h desktop.Handle) error
	NotifyMoveEnd(h desktop.Handle) error
}

// StateSetter changes window show state and z-order
type StateSetter interface {
	HandleChecker
	IsMinimized(h desktop.Handle) bool
	Show(h desktop.Handle, cmd desktop.ShowCommand) error
	// RequestForeground returns false when focus-stealing prevention denies it
	RequestForeground(h desktop.Handle) bool
	SetTopmost(h desktop.Handle, topmost bool) error
	PostClose(h desktop.Handle) error
}

// IconReader resolves window icons and draws them into pixel buffers
type IconReader interface {
	MessageIcon(h desktop.Handle, kind desktop.MessageIconKind) (desktop.IconHandle, error)
	ClassIcon(h desktop.Handle, kind desktop.ClassIconKind) (desktop.IconHandle, error)
	Rasterize(icon desktop.IconHandle, size int) (desktop.Bitmap, error)
}

// Desktop is everything a windowing backend provides
type Desktop interface {
	WindowSource
	GeometryReader
	WindowMover
	StateSetter
	IconReader
}
