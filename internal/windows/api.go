//go:build windows

// Package windows implements the desktop backend on top of user32, gdi32
// and dwmapi.
package windows

import xwin "golang.org/x/sys/windows"

var (
	user32   = xwin.NewLazySystemDLL("user32.dll")
	gdi32    = xwin.NewLazySystemDLL("gdi32.dll")
	dwmapi   = xwin.NewLazySystemDLL("dwmapi.dll")
	shcore   = xwin.NewLazySystemDLL("shcore.dll")
	kernel32 = xwin.NewLazySystemDLL("kernel32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsIconic                 = user32.NewProc("IsIconic")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procMonitorFromWindow        = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW          = user32.NewProc("GetMonitorInfoW")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procSendMessageTimeoutW      = user32.NewProc("SendMessageTimeoutW")
	procPostMessageW             = user32.NewProc("PostMessageW")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procShowWindow               = user32.NewProc("ShowWindow")
	procGetClassLongPtrW         = user32.NewProc("GetClassLongPtrW")
	procGetClassLongW            = user32.NewProc("GetClassLongW")
	procDrawIconEx               = user32.NewProc("DrawIconEx")
	procGetDC                    = user32.NewProc("GetDC")
	procReleaseDC                = user32.NewProc("ReleaseDC")
	procSetProcessDPIAware       = user32.NewProc("SetProcessDPIAware")

	procCreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	procCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	procSelectObject           = gdi32.NewProc("SelectObject")
	procDeleteObject           = gdi32.NewProc("DeleteObject")
	procDeleteDC               = gdi32.NewProc("DeleteDC")
	procGetDIBits              = gdi32.NewProc("GetDIBits")

	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")

	procSetProcessDpiAwareness = shcore.NewProc("SetProcessDpiAwareness")

	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

const (
	WM_CLOSE         = 0x0010
	WM_GETICON       = 0x007F
	WM_ENTERSIZEMOVE = 0x0231
	WM_EXITSIZEMOVE  = 0x0232

	SMTO_ABORTIFHUNG = 0x0002

	SW_MAXIMIZE = 3
	SW_MINIMIZE = 6
	SW_RESTORE  = 9

	SWP_NOSIZE     = 0x0001
	SWP_NOMOVE     = 0x0002
	SWP_NOACTIVATE = 0x0010

	HWND_TOP       = uintptr(0)
	HWND_TOPMOST   = ^uintptr(0) // (HWND)-1
	HWND_NOTOPMOST = ^uintptr(1) // (HWND)-2

	MONITOR_DEFAULTTONEAREST = 0x00000002

	DWMWA_EXTENDED_FRAME_BOUNDS = 9

	GCLP_HICON   = -14
	GCLP_HICONSM = -34

	DI_NORMAL      = 0x0003
	BI_RGB         = 0
	DIB_RGB_COLORS = 0

	PROCESS_SYSTEM_DPI_AWARE = 1
	E_ACCESSDENIED           = 0x80070005
)
