//go:build windows

package windows

import "fmt"

// EnableDPIAwareness makes the process system DPI aware so window and
// monitor coordinates are physical pixels. Shcore is tried first, with the
// older user32 call as a fallback. An already configured process counts
// as success.
func EnableDPIAwareness() error {
	if err := procSetProcessDpiAwareness.Find(); err == nil {
		hr, _, _ := procSetProcessDpiAwareness.Call(PROCESS_SYSTEM_DPI_AWARE)
		if hr == 0 || uint32(hr) == E_ACCESSDENIED {
			return nil
		}
	}

	if err := procSetProcessDPIAware.Find(); err != nil {
		return fmt.Errorf("no DPI awareness API available: %w", err)
	}

	ret, _, err := procSetProcessDPIAware.Call()
	if ret == 0 {
		return fmt.Errorf("SetProcessDPIAware failed: %w", err)
	}

	return nil
}
