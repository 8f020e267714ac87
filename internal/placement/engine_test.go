package placement_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/logger"
	"github.com/Norgate-AV/wincenter/internal/placement"
	"github.com/Norgate-AV/wincenter/internal/testutil"
	"github.com/Norgate-AV/wincenter/internal/winstate"
)

const hwnd desktop.Handle = 0x42

func rectAt(x, y, w, h int) desktop.Rect {
	return desktop.Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// newEngine returns an engine whose sleeps are recorded in the fake's event log
func newEngine(fake *testutil.FakeDesktop, opts ...placement.Option) *placement.Engine {
	log := logger.NewNoOpLogger()
	opts = append([]placement.Option{placement.WithSleep(func(d time.Duration) {
		fake.Events = append(fake.Events, "sleep:"+d.String())
	})}, opts...)

	return placement.NewEngine(fake, winstate.New(fake, log), log, opts...)
}

func TestCenterOn_TaskbarScenario(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Editor", "Edit", rectAt(30, 40, 800, 600))
	engine := newEngine(fake)

	p, err := engine.CenterOn(hwnd)
	require.NoError(t, err)

	assert.Equal(t, desktop.Point{X: 560, Y: 220}, p)
	assert.Equal(t, rectAt(560, 220, 800, 600), fake.Window(hwnd).Outer)
}

func TestCenterOn_NotificationSequence(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Editor", "Edit", rectAt(0, 0, 800, 600))
	fake.Window(hwnd).Minimized = true
	engine := newEngine(fake)

	_, err := engine.CenterOn(hwnd)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"show-restore:0x42",
		"foreground:0x42",
		"move-begin:0x42",
		"set-position:0x42",
		"sleep:50ms",
		"move-end:0x42",
	}, fake.Events)
}

func TestCenterOn_CustomDelay(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Editor", "Edit", rectAt(0, 0, 800, 600))
	engine := newEngine(fake, placement.WithMoveEndDelay(120*time.Millisecond))

	_, err := engine.CenterOn(hwnd)
	require.NoError(t, err)
	assert.Contains(t, fake.Events, "sleep:120ms")
}

func TestCenterOn_Idempotent(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Editor", "Edit", rectAt(-300, 900, 1023, 577))
	engine := newEngine(fake)

	first, err := engine.CenterOn(hwnd)
	require.NoError(t, err)
	rect := fake.Window(hwnd).Outer

	second, err := engine.CenterOn(hwnd)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, rect, fake.Window(hwnd).Outer)
}

func TestCenterOn_NotificationFailuresAreIgnored(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Editor", "Edit", rectAt(0, 0, 800, 600))
	fake.NotifyErr = errors.New("post failed")
	fake.ForegroundResult = false
	engine := newEngine(fake)

	p, err := engine.CenterOn(hwnd)
	require.NoError(t, err)
	assert.Equal(t, desktop.Point{X: 560, Y: 220}, p)
}

func TestCenterOn_WindowLargerThanWorkArea(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Huge", "Big", rectAt(0, 0, 2001, 1101))
	engine := newEngine(fake)

	p, err := engine.CenterOn(hwnd)
	require.NoError(t, err)

	// floor((1920-2001)/2) = floor(-40.5) = -41
	assert.Equal(t, desktop.Point{X: -41, Y: -31}, p)
}

func TestCenterOn_SecondaryMonitor(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().
		WithMonitor(rectAt(-1280, -200, 1280, 1024), rectAt(-1280, -200, 1280, 984)).
		WithWindow(hwnd, "Left", "Cls", rectAt(-1000, 0, 640, 480))
	engine := newEngine(fake)

	p, err := engine.CenterOn(hwnd)
	require.NoError(t, err)
	assert.Equal(t, desktop.Point{X: -960, Y: 52}, p)
}

func TestCenterOn_InvalidHandle(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop()
	engine := newEngine(fake)

	_, err := engine.CenterOn(0xdead)
	assert.ErrorIs(t, err, desktop.ErrHandleInvalid)
	assert.Empty(t, fake.SetPositionCalls)
}

func TestCenterOn_MoveFailure(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Editor", "Edit", rectAt(0, 0, 800, 600))
	fake.SetPositionErr = errors.New("SetWindowPos failed")
	engine := newEngine(fake)

	_, err := engine.CenterOn(hwnd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to move window 0x42")
	assert.NotContains(t, fake.Events, "move-end:0x42")
}

func TestSnapToCorner_BottomRightScenario(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Small", "Cls", rectAt(100, 100, 400, 300))
	engine := newEngine(fake)

	p, err := engine.SnapToCorner(hwnd, desktop.BottomRight, 10)
	require.NoError(t, err)

	assert.Equal(t, desktop.Point{X: 1510, Y: 770}, p)
	assert.Empty(t, fake.ForegroundCalls, "snapping does not activate")
	assert.Equal(t, []string{"set-position:0x42"}, fake.Events, "no move notifications")
}

func TestSnapToCorner_CompensatesShadow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		corner desktop.Corner
		margin int
		want   desktop.Point
	}{
		{desktop.TopLeft, 0, desktop.Point{X: -8, Y: 0}},
		{desktop.TopLeft, 12, desktop.Point{X: 4, Y: 12}},
		{desktop.BottomLeft, 10, desktop.Point{X: 2, Y: 470}},
		{desktop.TopRight, 10, desktop.Point{X: 1102, Y: 10}},
		{desktop.BottomRight, 10, desktop.Point{X: 1102, Y: 470}},
	}

	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			t.Parallel()

			fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Shadowed", "Cls", rectAt(100, 100, 816, 608))
			fake.Window(hwnd).Shadow = desktop.FramePadding{Left: 8, Right: 8, Bottom: 8}
			engine := newEngine(fake)

			p, err := engine.SnapToCorner(hwnd, tt.corner, tt.margin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestSnapToCorner_UsesFullBoundsNotWorkArea(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Small", "Cls", rectAt(0, 0, 400, 300))
	engine := newEngine(fake)

	_, err := engine.SnapToCorner(hwnd, desktop.BottomLeft, 0)
	require.NoError(t, err)

	assert.Equal(t, 1080, fake.Window(hwnd).Outer.Bottom)
}

func TestSnapToCorner_RestoresMinimized(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Small", "Cls", rectAt(0, 0, 400, 300))
	fake.Window(hwnd).Minimized = true
	engine := newEngine(fake)

	_, err := engine.SnapToCorner(hwnd, desktop.TopLeft, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"show-restore:0x42", "set-position:0x42"}, fake.Events)
}

func TestSnapToCorner_InvalidArguments(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Small", "Cls", rectAt(0, 0, 400, 300))
	engine := newEngine(fake)

	_, err := engine.SnapToCorner(hwnd, desktop.Corner(9), 0)
	assert.ErrorIs(t, err, desktop.ErrInvalidArgument)

	_, err = engine.SnapToCorner(hwnd, desktop.TopLeft, -1)
	assert.ErrorIs(t, err, desktop.ErrInvalidArgument)

	assert.Empty(t, fake.Events, "the window is not touched")
}

func TestFramePadding_DegradesWhenFrameUnavailable(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Shadowed", "Cls", rectAt(100, 100, 816, 608))
	fake.Window(hwnd).Shadow = desktop.FramePadding{Left: 8, Right: 8, Bottom: 8}
	fake.Window(hwnd).FrameErr = errors.New("DwmGetWindowAttribute failed")
	engine := newEngine(fake)

	pad, err := engine.FramePadding(hwnd)
	require.NoError(t, err)

	assert.True(t, pad.IsZero())
	assert.Equal(t, pad.OuterWidth, pad.FrameWidth)
	assert.Equal(t, pad.OuterHeight, pad.FrameHeight)
}

func TestFramePadding_Measured(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "Shadowed", "Cls", rectAt(100, 100, 816, 608))
	fake.Window(hwnd).Shadow = desktop.FramePadding{Left: 7, Top: 1, Right: 7, Bottom: 7}
	engine := newEngine(fake)

	pad, err := engine.FramePadding(hwnd)
	require.NoError(t, err)

	assert.Equal(t, desktop.FramePadding{
		Left: 7, Top: 1, Right: 7, Bottom: 7,
		OuterWidth: 816, OuterHeight: 608,
		FrameWidth: 802, FrameHeight: 600,
	}, pad)
}

func TestFramePadding_InvalidHandle(t *testing.T) {
	t.Parallel()

	engine := newEngine(testutil.NewFakeDesktop())

	_, err := engine.FramePadding(0x1)
	assert.ErrorIs(t, err, desktop.ErrHandleInvalid)
}

func TestMonitorFor_Fallbacks(t *testing.T) {
	t.Parallel()

	full := rectAt(0, 0, 1920, 1080)

	tests := []struct {
		name string
		work desktop.Rect
		want desktop.Rect
	}{
		{"work area present", rectAt(0, 0, 1920, 1040), rectAt(0, 0, 1920, 1040)},
		{"work area missing", desktop.Rect{}, full},
		{"work area overflowing", rectAt(0, -20, 1920, 1060), rectAt(0, 0, 1920, 1040)},
		{"work area elsewhere", rectAt(5000, 0, 100, 100), full},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := testutil.NewFakeDesktop().
				WithMonitor(full, tt.work).
				WithWindow(hwnd, "W", "C", rectAt(0, 0, 100, 100))
			engine := newEngine(fake)

			mon, err := engine.MonitorFor(hwnd)
			require.NoError(t, err)
			assert.Equal(t, full, mon.FullBounds)
			assert.Equal(t, tt.want, mon.WorkArea)
			assert.True(t, mon.FullBounds.Contains(mon.WorkArea))
		})
	}
}

func TestMonitorFor_Errors(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeDesktop().WithWindow(hwnd, "W", "C", rectAt(0, 0, 100, 100))
	fake.Window(hwnd).MonitorErr = errors.New("GetMonitorInfo failed")
	engine := newEngine(fake)

	_, err := engine.MonitorFor(hwnd)
	assert.ErrorIs(t, err, desktop.ErrGeometryUnavailable)

	_, err = engine.MonitorFor(0x9)
	assert.ErrorIs(t, err, desktop.ErrHandleInvalid)
}

func TestCenterOrigin(t *testing.T) {
	t.Parallel()

	work := rectAt(0, 0, 1920, 1040)
	assert.Equal(t, desktop.Point{X: 560, Y: 220}, placement.CenterOrigin(rectAt(0, 0, 800, 600), work))
	assert.Equal(t, desktop.Point{X: 560, Y: 219}, placement.CenterOrigin(rectAt(0, 0, 799, 601), work))
}

func TestCornerOrigin_ZeroPadding(t *testing.T) {
	t.Parallel()

	pad := desktop.ComputeFramePadding(rectAt(0, 0, 400, 300), rectAt(0, 0, 400, 300))
	bounds := rectAt(0, 0, 1920, 1080)

	p, err := placement.CornerOrigin(desktop.BottomRight, bounds, pad, 10)
	require.NoError(t, err)
	assert.Equal(t, desktop.Point{X: 1510, Y: 770}, p)

	p, err = placement.CornerOrigin(desktop.TopLeft, bounds, pad, 0)
	require.NoError(t, err)
	assert.Equal(t, desktop.Point{X: 0, Y: 0}, p)
}
