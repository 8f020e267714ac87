package placement

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/wincenter/internal/desktop"
)

// MonitorFor resolves the monitor nearest to the window. A missing work area
// falls back to the full monitor bounds, and a work area reaching outside
// the bounds is clipped to them.
func (e *Engine) MonitorFor(h desktop.Handle) (desktop.MonitorInfo, error) {
	if !e.win.IsWindow(h) {
		return desktop.MonitorInfo{}, fmt.Errorf("window %s: %w", h, desktop.ErrHandleInvalid)
	}

	mon, err := e.win.MonitorInfo(h)
	if err != nil {
		return desktop.MonitorInfo{}, fmt.Errorf("monitor for window %s: %w: %w", h, desktop.ErrGeometryUnavailable, err)
	}

	if mon.FullBounds.Empty() {
		return desktop.MonitorInfo{}, fmt.Errorf("monitor for window %s has no bounds: %w", h, desktop.ErrGeometryUnavailable)
	}

	if !mon.FullBounds.Contains(mon.WorkArea) {
		mon.WorkArea = mon.FullBounds.Intersect(mon.WorkArea)
	}

	if mon.WorkArea.Empty() {
		e.log.Debug("Work area unavailable, using full monitor bounds",
			slog.String("hwnd", h.String()),
			slog.String("bounds", mon.FullBounds.String()),
		)
		mon.WorkArea = mon.FullBounds
	}

	return mon, nil
}

// FramePadding measures the invisible margin between the window's outer
// rectangle and its visible frame. When the frame cannot be queried the
// padding is zero and the frame equals the outer rectangle.
func (e *Engine) FramePadding(h desktop.Handle) (desktop.FramePadding, error) {
	outer, err := e.win.OuterRect(h)
	if err != nil {
		return desktop.FramePadding{}, fmt.Errorf("outer rect of window %s: %w", h, handleError(err))
	}

	frame, err := e.win.VisualFrameRect(h)
	switch {
	case err != nil:
		e.log.Debug("Visual frame unavailable, assuming no shadow",
			slog.String("hwnd", h.String()),
			slog.Any("error", err),
		)
		frame = outer
	case frame.Empty() || !outer.Contains(frame):
		e.log.Debug("Visual frame outside outer rect, assuming no shadow",
			slog.String("hwnd", h.String()),
			slog.String("outer", outer.String()),
			slog.String("frame", frame.String()),
		)
		frame = outer
	}

	pad := desktop.ComputeFramePadding(outer, frame)
	e.log.Trace("Frame padding",
		slog.String("hwnd", h.String()),
		slog.Int("left", pad.Left),
		slog.Int("top", pad.Top),
		slog.Int("right", pad.Right),
		slog.Int("bottom", pad.Bottom),
	)

	return pad, nil
}

// CenterOrigin returns the outer-rect origin that centers a window of the
// given outer size inside the work area. Division floors, so windows larger
// than the work area are offset consistently.
func CenterOrigin(outer, work desktop.Rect) desktop.Point {
	return desktop.Point{
		X: work.Left + floorDiv(work.Width()-outer.Width(), 2),
		Y: work.Top + floorDiv(work.Height()-outer.Height(), 2),
	}
}

// CornerOrigin returns the outer-rect origin that places the visible frame
// exactly margin pixels from the bounds edges meeting at corner.
func CornerOrigin(corner desktop.Corner, bounds desktop.Rect, pad desktop.FramePadding, margin int) (desktop.Point, error) {
	if !corner.Valid() {
		return desktop.Point{}, fmt.Errorf("%w: corner %s", desktop.ErrInvalidArgument, corner)
	}

	if margin < 0 {
		return desktop.Point{}, fmt.Errorf("%w: margin %d must be >= 0", desktop.ErrInvalidArgument, margin)
	}

	var p desktop.Point

	if corner.IsRight() {
		p.X = bounds.Right - margin - (pad.OuterWidth - pad.Right)
	} else {
		p.X = bounds.Left + margin - pad.Left
	}

	if corner.IsBottom() {
		p.Y = bounds.Bottom - margin - (pad.OuterHeight - pad.Bottom)
	} else {
		p.Y = bounds.Top + margin - pad.Top
	}

	return p, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
