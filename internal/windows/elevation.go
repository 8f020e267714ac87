//go:build windows

package windows

import xwin "golang.org/x/sys/windows"

// IsElevated returns whether the current process is running with
// administrator privileges
func IsElevated() bool {
	return xwin.GetCurrentProcessToken().IsElevated()
}
