package desktop

import "errors"

var (
	// ErrHandleInvalid means the target window no longer exists or could not
	// be queried. It is reported to the caller and is never fatal.
	ErrHandleInvalid = errors.New("window handle is invalid")

	// ErrGeometryUnavailable means a monitor or frame query failed.
	ErrGeometryUnavailable = errors.New("window geometry unavailable")

	// ErrForegroundDenied means the OS refused a foreground request.
	ErrForegroundDenied = errors.New("foreground request denied")

	// ErrResourceExhausted means a drawing surface could not be allocated.
	ErrResourceExhausted = errors.New("drawing resources exhausted")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrUnsupportedPlatform = errors.New("desktop control is only supported on Windows")
)
