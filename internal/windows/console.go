//go:build windows

package windows

import (
	"sync"

	xwin "golang.org/x/sys/windows"
)

// Console control event types
const (
	CTRL_C_EVENT        = 0
	CTRL_BREAK_EVENT    = 1
	CTRL_CLOSE_EVENT    = 2
	CTRL_LOGOFF_EVENT   = 5
	CTRL_SHUTDOWN_EVENT = 6
)

var (
	consoleMu       sync.Mutex
	consoleHandlers []func(ctrlType uint32)
	consoleOnce     sync.Once
	consoleErr      error
)

// OnConsoleClose registers fn to run when the console window is closed or
// the session ends. Ctrl+C and Ctrl+Break are left to os/signal.
func OnConsoleClose(fn func(ctrlType uint32)) error {
	consoleOnce.Do(func() {
		ret, _, err := procSetConsoleCtrlHandler.Call(
			xwin.NewCallback(consoleCtrlHandlerCallback),
			1, // TRUE - add handler
		)
		if ret == 0 {
			consoleErr = err
		}
	})

	if consoleErr != nil {
		return consoleErr
	}

	consoleMu.Lock()
	consoleHandlers = append(consoleHandlers, fn)
	consoleMu.Unlock()

	return nil
}

// consoleCtrlHandlerCallback is the actual callback that Windows calls
func consoleCtrlHandlerCallback(ctrlType uint32) uintptr {
	switch ctrlType {
	case CTRL_CLOSE_EVENT, CTRL_LOGOFF_EVENT, CTRL_SHUTDOWN_EVENT:
	default:
		return 0 // FALSE - let default handler process it
	}

	consoleMu.Lock()
	handlers := append([]func(uint32){}, consoleHandlers...)
	consoleMu.Unlock()

	for _, fn := range handlers {
		fn(ctrlType)
	}

	return 1
}

// GetCtrlTypeName returns a human-readable name for a control event type
func GetCtrlTypeName(ctrlType uint32) string {
	switch ctrlType {
	case CTRL_C_EVENT:
		return "CTRL_C"
	case CTRL_BREAK_EVENT:
		return "CTRL_BREAK"
	case CTRL_CLOSE_EVENT:
		return "CTRL_CLOSE"
	case CTRL_LOGOFF_EVENT:
		return "CTRL_LOGOFF"
	case CTRL_SHUTDOWN_EVENT:
		return "CTRL_SHUTDOWN"
	default:
		return "UNKNOWN"
	}
}
