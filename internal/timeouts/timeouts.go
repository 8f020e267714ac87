// Package timeouts defines delay and polling constants for window operations.
package timeouts

import "time"

const (
	// MoveEndDelay separates the position change from the move-end
	// notification. Some applications only persist their geometry when an
	// interactive move ends, so the target gets time to process the new
	// position first. Tunable through config; not a correctness guarantee.
	MoveEndDelay = 50 * time.Millisecond

	// CloseRefreshDelay is how long the CLI waits after posting a close
	// request before re-listing windows.
	CloseRefreshDelay = 300 * time.Millisecond

	// MessageTimeout bounds synchronous messages sent to other windows
	// (icon queries) so a hung target cannot stall a listing.
	MessageTimeout = 200 * time.Millisecond

	// ForegroundSettleDelay allows the foreground change to complete before
	// it is verified.
	ForegroundSettleDelay = 50 * time.Millisecond

	// WatchInterval is the default polling interval of the watch command.
	WatchInterval = 500 * time.Millisecond
)
