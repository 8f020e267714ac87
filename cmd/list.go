package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/directory"
	"github.com/Norgate-AV/wincenter/internal/icon"
)

const maxTitleWidth = 60

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List visible windows",
		Args:    cobra.NoArgs,
		RunE:    runWith(runList),
	}

	cmd.Flags().StringP("query", "q", "", "only show windows whose title, process or class contains this text")
	cmd.Flags().String("icons", "", "write each window's icon as <handle>.png into this directory")

	return cmd
}

func runList(a *app, cmd *cobra.Command, _ []string) error {
	query, _ := cmd.Flags().GetString("query")
	iconDir, _ := cmd.Flags().GetString("icons")

	cache := icon.NewCache(a.icons, a.settings.IconSize, a.settings.IconCacheLimit)

	var windows []desktop.WindowInfo
	for _, w := range a.dir.Refresh(cache) {
		if directory.Matches(w, query) {
			windows = append(windows, w)
		}
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tHANDLE\tTITLE\tPROCESS\tCLASS")

	for i, w := range windows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, w.Handle, truncate(w.Title, maxTitleWidth), w.ProcessName, w.ClassName)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	color.New(color.Faint).Fprintf(a.out, "Windows shown: %d\n", len(windows))

	if iconDir == "" {
		return nil
	}

	written, err := writeIcons(a, cache, windows, iconDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Wrote %d icon(s) to %s\n", written, iconDir)
	return nil
}

func writeIcons(a *app, cache *icon.Cache, windows []desktop.WindowInfo, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create icon directory: %w", err)
	}

	written := 0

	for _, w := range windows {
		img, ok := cache.Icon(w.Handle)
		if !ok {
			a.log.Debug("Window has no icon", slog.String("hwnd", w.Handle.String()), slog.String("title", w.Title))
			continue
		}

		if err := writePNG(filepath.Join(dir, w.Handle.String()+".png"), img); err != nil {
			return written, err
		}

		written++
	}

	return written, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	r := []rune(s)
	return string(r[:n-1]) + "…"
}
