//go:build windows

package windows

import (
	"errors"
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	xwin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/wincenter/internal/desktop"
)

var (
	foundWindows []uintptr
	windowsMu    sync.Mutex

	// created once; the runtime limits the number of callbacks per process
	enumWindowsCallbackPtr = xwin.NewCallback(enumWindowsCallback)
)

func enumWindowsCallback(hwnd uintptr, lparam uintptr) uintptr {
	foundWindows = append(foundWindows, hwnd)
	return 1 // Continue enumeration
}

// EnumerateWindows performs a thread-safe enumeration of all top-level
// windows in z-order. Filtering is left to the caller.
func EnumerateWindows() ([]uintptr, error) {
	windowsMu.Lock()
	defer windowsMu.Unlock()

	foundWindows = nil

	ret, _, err := procEnumWindows.Call(enumWindowsCallbackPtr, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %w", err)
	}

	// Make a copy to avoid races with subsequent enumerations
	windows := make([]uintptr, len(foundWindows))
	copy(windows, foundWindows)

	return windows, nil
}

// GetWindowText retrieves the title of a window. Titles of windows owned by
// other processes are read without messaging them, so this cannot hang.
func GetWindowText(hwnd uintptr) (string, error) {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		if !IsWindow(hwnd) {
			return "", fmt.Errorf("window 0x%X: %w", hwnd, desktop.ErrHandleInvalid)
		}

		return "", nil
	}

	buf := make([]uint16, n+1)

	ret, _, err := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 && !isSuccess(err) {
		return "", fmt.Errorf("GetWindowText failed: %w", err)
	}

	return xwin.UTF16ToString(buf), nil
}

// GetClassName retrieves the class name of a window
func GetClassName(hwnd uintptr) (string, error) {
	buf := make([]uint16, 256)

	ret, _, err := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return "", fmt.Errorf("GetClassName failed: %w", err)
	}

	return xwin.UTF16ToString(buf), nil
}

// IsWindow checks if a window handle is valid
func IsWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

// IsWindowVisible checks if a window is visible
func IsWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

// IsIconic checks if a window is minimized
func IsIconic(hwnd uintptr) bool {
	ret, _, _ := procIsIconic.Call(hwnd)
	return ret != 0
}

// GetWindowPid retrieves the process ID of a window
func GetWindowPid(hwnd uintptr) (uint32, error) {
	var pid uint32

	ret, _, err := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if ret == 0 {
		return 0, fmt.Errorf("GetWindowThreadProcessId failed: %w", err)
	}

	return pid, nil
}

// getWindowThread returns the id of the thread that created the window
func getWindowThread(hwnd uintptr) uintptr {
	tid, _, _ := procGetWindowThreadProcessId.Call(hwnd, 0)
	return tid
}

// GetWindowRect returns the outer rectangle, drop shadow included
func GetWindowRect(hwnd uintptr) (desktop.Rect, error) {
	var r RECT

	ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return desktop.Rect{}, fmt.Errorf("GetWindowRect failed: %w", err)
	}

	return r.toRect(), nil
}

// GetExtendedFrameBounds returns the visible frame as drawn by the desktop
// window manager
func GetExtendedFrameBounds(hwnd uintptr) (desktop.Rect, error) {
	if err := procDwmGetWindowAttribute.Find(); err != nil {
		return desktop.Rect{}, err
	}

	var r RECT

	hr, _, _ := procDwmGetWindowAttribute.Call(
		hwnd,
		uintptr(DWMWA_EXTENDED_FRAME_BOUNDS),
		uintptr(unsafe.Pointer(&r)),
		unsafe.Sizeof(r),
	)
	if hr != 0 {
		return desktop.Rect{}, fmt.Errorf("DwmGetWindowAttribute failed: HRESULT 0x%08X", uint32(hr))
	}

	return r.toRect(), nil
}

// isSuccess reports whether the error a LazyProc.Call returns alongside a
// zero result is actually ERROR_SUCCESS
func isSuccess(err error) bool {
	var errno syscall.Errno
	return err == nil || (errors.As(err, &errno) && errno == 0)
}
