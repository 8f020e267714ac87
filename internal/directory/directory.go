// Package directory lists the visible, titled top-level windows of the
// desktop and filters them by a free-text query.
package directory

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/interfaces"
	"github.com/Norgate-AV/wincenter/internal/logger"
)

// Invalidator is a cache that must be dropped whenever the listing is
// refreshed, such as the icon cache
type Invalidator interface {
	Reset()
}

// Directory enumerates windows through a WindowSource
type Directory struct {
	src   interfaces.WindowSource
	procs interfaces.ProcessNamer
	log   logger.LoggerInterface
}

// New creates a directory. procs may be nil, in which case process names
// are left empty.
func New(src interfaces.WindowSource, procs interfaces.ProcessNamer, log logger.LoggerInterface) *Directory {
	return &Directory{src: src, procs: procs, log: log}
}

// Windows returns a lazy sequence of the visible top-level windows with a
// non-empty title, in OS enumeration order. Each range over the sequence
// enumerates again, so it always reflects the current desktop. A window that
// fails to answer is skipped; it never ends the listing.
func (d *Directory) Windows() iter.Seq[desktop.WindowInfo] {
	return func(yield func(desktop.WindowInfo) bool) {
		handles, err := d.src.EnumerateWindows()
		if err != nil {
			d.log.Warn("Failed to enumerate windows", slog.Any("error", err))
			return
		}

		for _, h := range handles {
			info, ok := d.describe(h)
			if !ok {
				continue
			}

			if !yield(info) {
				return
			}
		}
	}
}

// Refresh drops the given cache and takes a fresh snapshot of the listing
func (d *Directory) Refresh(cache Invalidator) []desktop.WindowInfo {
	if cache != nil {
		cache.Reset()
	}

	windows := slices.Collect(d.Windows())
	d.log.Debug("Window list refreshed", slog.Int("count", len(windows)))

	return windows
}

// Lookup returns the current snapshot of a single window
func (d *Directory) Lookup(h desktop.Handle) (desktop.WindowInfo, bool) {
	return d.describe(h)
}

func (d *Directory) describe(h desktop.Handle) (desktop.WindowInfo, bool) {
	if !d.src.IsWindow(h) || !d.src.IsVisible(h) {
		return desktop.WindowInfo{}, false
	}

	title, err := d.src.WindowText(h)
	if err != nil {
		d.log.Trace("Skipping window, title unavailable", slog.String("hwnd", h.String()), slog.Any("error", err))
		return desktop.WindowInfo{}, false
	}

	if title == "" {
		return desktop.WindowInfo{}, false
	}

	class, err := d.src.ClassName(h)
	if err != nil {
		d.log.Trace("Skipping window, class unavailable", slog.String("hwnd", h.String()), slog.Any("error", err))
		return desktop.WindowInfo{}, false
	}

	info := desktop.WindowInfo{
		Handle:    h,
		Title:     title,
		ClassName: class,
		Visible:   true,
	}

	pid, err := d.src.ProcessID(h)
	if err != nil {
		d.log.Trace("Process id unavailable", slog.String("hwnd", h.String()), slog.Any("error", err))
		return info, true
	}

	info.PID = pid

	if d.procs != nil {
		name, err := d.procs.ProcessName(pid)
		if err != nil {
			d.log.Trace("Process name unavailable", slog.Uint64("pid", uint64(pid)), slog.Any("error", err))
		} else {
			info.ProcessName = name
		}
	}

	return info, true
}

// Filter returns the windows of seq that match query
func Filter(seq iter.Seq[desktop.WindowInfo], query string) iter.Seq[desktop.WindowInfo] {
	q := strings.ToLower(strings.TrimSpace(query))

	return func(yield func(desktop.WindowInfo) bool) {
		for w := range seq {
			if !matches(w, q) {
				continue
			}

			if !yield(w) {
				return
			}
		}
	}
}

// Matches reports whether a case-insensitive substring match of query hits
// the window's title, process name or class. An empty query matches
// everything.
func Matches(w desktop.WindowInfo, query string) bool {
	return matches(w, strings.ToLower(strings.TrimSpace(query)))
}

func matches(w desktop.WindowInfo, q string) bool {
	if q == "" {
		return true
	}

	haystack := strings.ToLower(w.Title + " " + w.ProcessName + " " + w.ClassName)
	return strings.Contains(haystack, q)
}
