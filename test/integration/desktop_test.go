//go:build integration && windows

package integration

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/directory"
	"github.com/Norgate-AV/wincenter/internal/icon"
	"github.com/Norgate-AV/wincenter/internal/logger"
	"github.com/Norgate-AV/wincenter/internal/placement"
	"github.com/Norgate-AV/wincenter/internal/process"
	"github.com/Norgate-AV/wincenter/internal/windows"
	"github.com/Norgate-AV/wincenter/internal/winstate"
)

func newClient(t *testing.T) *windows.Client {
	t.Helper()

	if err := windows.EnableDPIAwareness(); err != nil {
		t.Logf("DPI awareness not enabled: %v", err)
	}

	return windows.NewClient(logger.NewNoOpLogger())
}

// TestIntegration_ListWindows lists the real desktop and checks every
// entry carries a title and a class
func TestIntegration_ListWindows(t *testing.T) {
	client := newClient(t)
	dir := directory.New(client, process.NewLookup(), logger.NewNoOpLogger())

	windowsSeen := slices.Collect(dir.Windows())
	if len(windowsSeen) == 0 {
		t.Skip("No visible titled windows on this desktop")
	}

	for _, w := range windowsSeen {
		assert.NotEmpty(t, w.Title, "window %s", w.Handle)
		assert.NotEmpty(t, w.ClassName, "window %s", w.Handle)
		assert.True(t, w.Visible)
	}
}

// TestIntegration_Geometry reads the geometry of the first listed window
func TestIntegration_Geometry(t *testing.T) {
	client := newClient(t)
	dir := directory.New(client, nil, logger.NewNoOpLogger())

	first, found := firstWindow(dir)
	if !found {
		t.Skip("No visible titled windows on this desktop")
	}

	engine := placement.NewEngine(client, winstate.New(client, logger.NewNoOpLogger()), logger.NewNoOpLogger())

	mon, err := engine.MonitorFor(first)
	require.NoError(t, err)
	assert.False(t, mon.FullBounds.Empty())
	assert.True(t, mon.FullBounds.Contains(mon.WorkArea), "work area %s inside %s", mon.WorkArea, mon.FullBounds)

	pad, err := engine.FramePadding(first)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pad.OuterWidth, pad.FrameWidth)
	assert.GreaterOrEqual(t, pad.OuterHeight, pad.FrameHeight)
}

// TestIntegration_Icon extracts the icon of the first window that has one
func TestIntegration_Icon(t *testing.T) {
	client := newClient(t)
	dir := directory.New(client, nil, logger.NewNoOpLogger())
	ex := icon.NewExtractor(client, logger.NewNoOpLogger())

	for w := range dir.Windows() {
		img, ok := ex.Extract(w.Handle, 18)
		if !ok {
			continue
		}

		assert.Equal(t, 18, img.Bounds().Dx())
		assert.Equal(t, 18, img.Bounds().Dy())
		return
	}

	t.Skip("No window with an icon found")
}

func firstWindow(dir *directory.Directory) (desktop.Handle, bool) {
	for w := range dir.Windows() {
		return w.Handle, true
	}

	return 0, false
}
