// Package desktop defines the platform-neutral types shared by the window
// directory, placement engine, state control and icon extractor.
package desktop

import "fmt"

// Handle identifies a live top-level window. It is owned by the OS and can
// become invalid at any time.
type Handle uintptr

// String formats the handle the way the CLI prints and parses it.
func (h Handle) String() string {
	return fmt.Sprintf("0x%X", uintptr(h))
}

// WindowInfo is a read-only snapshot of a window taken during a directory
// refresh. It is never kept in sync with the live window.
type WindowInfo struct {
	Handle      Handle
	Title       string
	ClassName   string
	PID         uint32
	ProcessName string
	Visible     bool
}

// IconHandle is a native icon resource. It may belong to the window class or
// the system, so it is never destroyed here.
type IconHandle uintptr

// MessageIconKind selects the icon a window reports about itself.
type MessageIconKind int

// Values match the WM_GETICON wParam.
const (
	IconSmall  MessageIconKind = 0
	IconBig    MessageIconKind = 1
	IconSmall2 MessageIconKind = 2
)

// ClassIconKind selects an icon registered with the window class.
type ClassIconKind int

const (
	ClassIconSmall ClassIconKind = iota
	ClassIcon
)

// Bitmap holds raw pixels read back from a drawing surface: 4 bytes per
// pixel in blue, green, red, padding order.
type Bitmap struct {
	Width    int
	Height   int
	Pix      []byte
	BottomUp bool
}

// ShowCommand is a window show state change.
type ShowCommand int

const (
	ShowRestore ShowCommand = iota
	ShowMinimize
	ShowMaximize
)

func (c ShowCommand) String() string {
	switch c {
	case ShowRestore:
		return "restore"
	case ShowMinimize:
		return "minimize"
	case ShowMaximize:
		return "maximize"
	default:
		return "unknown"
	}
}
