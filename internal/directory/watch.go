package directory

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/Norgate-AV/wincenter/internal/desktop"
)

// ChangeKind tells whether a window appeared or went away
type ChangeKind int

const (
	Appeared ChangeKind = iota
	Disappeared
)

func (k ChangeKind) String() string {
	if k == Disappeared {
		return "disappeared"
	}

	return "appeared"
}

// Change is one difference between two consecutive listings
type Change struct {
	Kind   ChangeKind
	Window desktop.WindowInfo
}

// Watch polls the listing every interval and calls fn for each window that
// appeared or disappeared since the previous poll. Windows present at the
// first poll are reported as appeared. Only windows matching query are
// tracked. Watch blocks until ctx is cancelled and returns ctx.Err().
func (d *Directory) Watch(ctx context.Context, interval time.Duration, query string, fn func(Change)) error {
	if interval <= 0 {
		interval = time.Second
	}

	d.log.Debug("Window watch started", slog.Duration("interval", interval), slog.String("query", query))
	defer d.log.Debug("Window watch stopped")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := make(map[desktop.Handle]desktop.WindowInfo)

	for {
		seen = d.diff(seen, query, fn)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// diff reports the changes between prev and the current listing and returns
// the current listing keyed by handle
func (d *Directory) diff(prev map[desktop.Handle]desktop.WindowInfo, query string, fn func(Change)) map[desktop.Handle]desktop.WindowInfo {
	current := make(map[desktop.Handle]desktop.WindowInfo, len(prev))
	var order []desktop.Handle

	for w := range Filter(d.Windows(), query) {
		current[w.Handle] = w
		order = append(order, w.Handle)
	}

	for _, h := range order {
		if _, ok := prev[h]; !ok {
			fn(Change{Kind: Appeared, Window: current[h]})
		}
	}

	for _, h := range slices.Sorted(maps.Keys(prev)) {
		if _, ok := current[h]; !ok {
			fn(Change{Kind: Disappeared, Window: prev[h]})
		}
	}

	return current
}
