package desktop

import "fmt"

// Rect is a rectangle in virtual-desktop pixels. Coordinates can be negative
// for monitors left of or above the primary one.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether o lies entirely inside r
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Top >= r.Top && o.Right <= r.Right && o.Bottom <= r.Bottom
}

// Intersect returns the overlap of r and o, or the zero Rect when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
	if out.Empty() {
		return Rect{}
	}

	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Point is a screen position
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// MonitorInfo describes the monitor nearest to a window.
// WorkArea excludes reserved system UI such as the taskbar.
type MonitorInfo struct {
	FullBounds Rect
	WorkArea   Rect
}

// FramePadding is the per-edge distance between a window's outer rectangle,
// which includes any compositor drop shadow, and its visible frame.
type FramePadding struct {
	Left   int
	Top    int
	Right  int
	Bottom int

	OuterWidth  int
	OuterHeight int
	FrameWidth  int
	FrameHeight int
}

// ComputeFramePadding derives the padding between an outer rectangle and the
// visible frame inside it.
func ComputeFramePadding(outer, frame Rect) FramePadding {
	return FramePadding{
		Left:        frame.Left - outer.Left,
		Top:         frame.Top - outer.Top,
		Right:       outer.Right - frame.Right,
		Bottom:      outer.Bottom - frame.Bottom,
		OuterWidth:  outer.Width(),
		OuterHeight: outer.Height(),
		FrameWidth:  frame.Width(),
		FrameHeight: frame.Height(),
	}
}

// IsZero reports whether the frame and the outer rectangle coincide
func (p FramePadding) IsZero() bool {
	return p.Left == 0 && p.Top == 0 && p.Right == 0 && p.Bottom == 0
}
