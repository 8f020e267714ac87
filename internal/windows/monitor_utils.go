//go:build windows

package windows

import (
	"fmt"
	"unsafe"

	"github.com/Norgate-AV/wincenter/internal/desktop"
)

// GetMonitorInfo returns the bounds and work area of the monitor nearest
// to the window
func GetMonitorInfo(hwnd uintptr) (desktop.MonitorInfo, error) {
	hmon, _, _ := procMonitorFromWindow.Call(hwnd, MONITOR_DEFAULTTONEAREST)
	if hmon == 0 {
		return desktop.MonitorInfo{}, fmt.Errorf("MonitorFromWindow returned no monitor")
	}

	mi := MONITORINFO{CbSize: uint32(unsafe.Sizeof(MONITORINFO{}))}

	ret, _, err := procGetMonitorInfoW.Call(hmon, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return desktop.MonitorInfo{}, fmt.Errorf("GetMonitorInfo failed: %w", err)
	}

	return desktop.MonitorInfo{
		FullBounds: mi.RcMonitor.toRect(),
		WorkArea:   mi.RcWork.toRect(),
	}, nil
}
