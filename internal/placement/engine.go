// Package placement centers windows on their monitor and snaps them into
// monitor corners without resizing them.
package placement

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/interfaces"
	"github.com/Norgate-AV/wincenter/internal/logger"
	"github.com/Norgate-AV/wincenter/internal/timeouts"
	"github.com/Norgate-AV/wincenter/internal/winstate"
)

// Backend is the subset of the desktop the engine needs
type Backend interface {
	interfaces.GeometryReader
	interfaces.WindowMover
}

// Engine computes target positions and moves windows
type Engine struct {
	win          Backend
	state        *winstate.Controller
	log          logger.LoggerInterface
	moveEndDelay time.Duration
	sleep        func(time.Duration)
}

// Option configures an Engine
type Option func(*Engine)

// WithMoveEndDelay overrides the pause between the position change and the
// move-end notification
func WithMoveEndDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.moveEndDelay = d
		}
	}
}

// WithSleep replaces time.Sleep, for tests
func WithSleep(sleep func(time.Duration)) Option {
	return func(e *Engine) { e.sleep = sleep }
}

// NewEngine creates a placement engine
func NewEngine(win Backend, state *winstate.Controller, log logger.LoggerInterface, opts ...Option) *Engine {
	e := &Engine{
		win:          win,
		state:        state,
		log:          log,
		moveEndDelay: timeouts.MoveEndDelay,
		sleep:        time.Sleep,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CenterOn restores and activates the window, then moves it so its outer
// rectangle is centered in the work area of its monitor. The move is
// bracketed by move-begin/move-end notifications so applications that save
// their geometry when a drag ends observe it. Calling it twice yields the
// same rectangle.
func (e *Engine) CenterOn(h desktop.Handle) (desktop.Point, error) {
	if err := e.state.BringToFront(h); err != nil {
		return desktop.Point{}, err
	}

	outer, err := e.win.OuterRect(h)
	if err != nil {
		return desktop.Point{}, fmt.Errorf("outer rect of window %s: %w", h, handleError(err))
	}

	mon, err := e.MonitorFor(h)
	if err != nil {
		return desktop.Point{}, err
	}

	target := CenterOrigin(outer, mon.WorkArea)
	e.log.Debug("Centering window",
		slog.String("hwnd", h.String()),
		slog.String("outer", outer.String()),
		slog.String("workArea", mon.WorkArea.String()),
		slog.String("target", target.String()),
	)

	e.notify("move-begin", h, e.win.NotifyMoveBegin)

	if err := e.move(h, target); err != nil {
		return desktop.Point{}, err
	}

	e.sleep(e.moveEndDelay)
	e.notify("move-end", h, e.win.NotifyMoveEnd)

	return target, nil
}

// SnapToCorner restores the window and moves it so its visible frame sits
// margin pixels from the chosen corner of the monitor's full bounds. The
// full bounds are used on purpose, so the window may cover the taskbar.
// Unlike CenterOn the window is not activated.
func (e *Engine) SnapToCorner(h desktop.Handle, corner desktop.Corner, margin int) (desktop.Point, error) {
	if !corner.Valid() {
		return desktop.Point{}, fmt.Errorf("%w: corner %s", desktop.ErrInvalidArgument, corner)
	}

	if margin < 0 {
		return desktop.Point{}, fmt.Errorf("%w: margin %d must be >= 0", desktop.ErrInvalidArgument, margin)
	}

	if err := e.state.RestoreIfMinimized(h); err != nil {
		return desktop.Point{}, err
	}

	pad, err := e.FramePadding(h)
	if err != nil {
		return desktop.Point{}, err
	}

	mon, err := e.MonitorFor(h)
	if err != nil {
		return desktop.Point{}, err
	}

	target, err := CornerOrigin(corner, mon.FullBounds, pad, margin)
	if err != nil {
		return desktop.Point{}, err
	}

	e.log.Debug("Snapping window",
		slog.String("hwnd", h.String()),
		slog.String("corner", corner.String()),
		slog.Int("margin", margin),
		slog.String("bounds", mon.FullBounds.String()),
		slog.String("target", target.String()),
	)

	if err := e.move(h, target); err != nil {
		return desktop.Point{}, err
	}

	return target, nil
}

func (e *Engine) move(h desktop.Handle, p desktop.Point) error {
	if err := e.win.SetPosition(h, p.X, p.Y); err != nil {
		if !e.win.IsWindow(h) {
			err = handleError(err)
		}

		return fmt.Errorf("failed to move window %s to %s: %w", h, p, err)
	}

	return nil
}

// notify sends a best-effort notification. Delivery is not guaranteed and a
// failure never fails the placement.
func (e *Engine) notify(name string, h desktop.Handle, send func(desktop.Handle) error) {
	if err := send(h); err != nil {
		e.log.Debug("Notification not delivered",
			slog.String("notification", name),
			slog.String("hwnd", h.String()),
			slog.Any("error", err),
		)
	}
}

func handleError(err error) error {
	if errors.Is(err, desktop.ErrHandleInvalid) {
		return err
	}

	return fmt.Errorf("%w: %w", desktop.ErrHandleInvalid, err)
}
