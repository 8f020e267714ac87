package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/directory"
)

// parseHandle accepts a decimal or 0x-prefixed hexadecimal window handle
func parseHandle(s string) (desktop.Handle, bool) {
	s = strings.TrimSpace(s)

	var (
		v   uint64
		err error
	)

	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err = strconv.ParseUint(rest, 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}

	if err != nil || v == 0 {
		return 0, false
	}

	return desktop.Handle(v), true
}

// resolveTarget turns a handle or a search query into a window handle and
// a label for status messages. A query resolves to the first match in
// listing order.
func (a *app) resolveTarget(arg string) (desktop.Handle, string, error) {
	if strings.TrimSpace(arg) == "" {
		return 0, "", fmt.Errorf("%w: empty window target", desktop.ErrInvalidArgument)
	}

	h, isHandle := parseHandle(arg)
	if isHandle && a.desk.IsWindow(h) {
		if w, ok := a.dir.Lookup(h); ok {
			return h, w.Title, nil
		}

		return h, h.String(), nil
	}

	var (
		first desktop.WindowInfo
		count int
	)

	for w := range directory.Filter(a.dir.Windows(), arg) {
		if count == 0 {
			first = w
		}
		count++
	}

	switch {
	case count == 0 && isHandle:
		return 0, "", fmt.Errorf("window %s: %w", h, desktop.ErrHandleInvalid)
	case count == 0:
		return 0, "", fmt.Errorf("no window matches %q", arg)
	case count > 1:
		a.log.Info("Multiple windows match, using the first",
			slog.String("query", arg),
			slog.Int("matches", count),
			slog.String("title", first.Title),
		)
	}

	return first.Handle, first.Title, nil
}
