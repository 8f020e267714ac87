package winstate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/logger"
	"github.com/Norgate-AV/wincenter/internal/testutil"
	"github.com/Norgate-AV/wincenter/internal/winstate"
)

const hwnd desktop.Handle = 0x100

func newController() (*winstate.Controller, *testutil.FakeDesktop) {
	fake := testutil.NewFakeDesktop().
		WithWindow(hwnd, "Notepad", "Notepad", desktop.Rect{Left: 10, Top: 10, Right: 810, Bottom: 610})

	return winstate.New(fake, logger.NewNoOpLogger()), fake
}

func TestController_ShowPrimitives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(*winstate.Controller) error
		want desktop.ShowCommand
	}{
		{"restore", func(c *winstate.Controller) error { return c.Restore(hwnd) }, desktop.ShowRestore},
		{"minimize", func(c *winstate.Controller) error { return c.Minimize(hwnd) }, desktop.ShowMinimize},
		{"maximize", func(c *winstate.Controller) error { return c.Maximize(hwnd) }, desktop.ShowMaximize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, fake := newController()
			require.NoError(t, tt.call(c))
			require.NoError(t, tt.call(c), "primitives are idempotent")

			require.Len(t, fake.ShowCalls, 2)
			assert.Equal(t, tt.want, fake.ShowCalls[0].Command)
		})
	}
}

func TestController_InvalidHandle(t *testing.T) {
	t.Parallel()

	c, fake := newController()
	fake.Close(hwnd)

	for name, err := range map[string]error{
		"restore":  c.Restore(hwnd),
		"minimize": c.Minimize(hwnd),
		"maximize": c.Maximize(hwnd),
		"front":    c.BringToFront(hwnd),
		"topmost":  c.SetTopmost(hwnd, true),
		"close":    c.RequestClose(hwnd),
	} {
		assert.ErrorIs(t, err, desktop.ErrHandleInvalid, name)
	}

	assert.Empty(t, fake.Events, "nothing is sent to a dead window")
}

func TestController_BringToFront_RestoresMinimized(t *testing.T) {
	t.Parallel()

	c, fake := newController()
	fake.Window(hwnd).Minimized = true

	require.NoError(t, c.BringToFront(hwnd))

	assert.Equal(t, []string{"show-restore:0x100", "foreground:0x100"}, fake.Events)
	assert.False(t, fake.Window(hwnd).Minimized)
}

func TestController_BringToFront_LeavesMaximized(t *testing.T) {
	t.Parallel()

	c, fake := newController()
	fake.Window(hwnd).Maximized = true

	require.NoError(t, c.BringToFront(hwnd))

	assert.Empty(t, fake.ShowCalls)
	assert.True(t, fake.Window(hwnd).Maximized)
}

func TestController_BringToFront_DeniedIsNotError(t *testing.T) {
	t.Parallel()

	c, fake := newController()
	fake.ForegroundResult = false
	fake.Window(hwnd).Minimized = true

	require.NoError(t, c.BringToFront(hwnd))
	assert.False(t, fake.Window(hwnd).Minimized, "restore still applies")
	assert.Len(t, fake.ForegroundCalls, 1)
}

func TestController_SetTopmost(t *testing.T) {
	t.Parallel()

	c, fake := newController()

	require.NoError(t, c.SetTopmost(hwnd, true))
	assert.True(t, fake.Window(hwnd).Topmost)

	require.NoError(t, c.SetTopmost(hwnd, false))
	assert.False(t, fake.Window(hwnd).Topmost)

	assert.Equal(t, []testutil.TopmostCall{{Hwnd: hwnd, Topmost: true}, {Hwnd: hwnd, Topmost: false}}, fake.TopmostCalls)
	assert.Empty(t, fake.SetPositionCalls, "topmost never moves the window")
}

func TestController_RequestClose(t *testing.T) {
	t.Parallel()

	c, fake := newController()

	require.NoError(t, c.RequestClose(hwnd))
	assert.Equal(t, []desktop.Handle{hwnd}, fake.CloseCalls)
	assert.True(t, fake.IsWindow(hwnd), "close is only a request")
}

func TestController_BackendErrorsAreWrapped(t *testing.T) {
	t.Parallel()

	c, fake := newController()
	boom := errors.New("access denied")
	fake.ShowErr = boom
	fake.TopmostErr = boom
	fake.CloseErr = boom

	err := c.Minimize(hwnd)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to minimize window 0x100")

	assert.ErrorIs(t, c.SetTopmost(hwnd, true), boom)
	assert.ErrorIs(t, c.RequestClose(hwnd), boom)
}
