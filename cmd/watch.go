package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/wincenter/internal/directory"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print windows as they appear and disappear",
		Args:  cobra.NoArgs,
		RunE:  runWith(runWatch),
	}

	cmd.Flags().StringP("query", "q", "", "only track windows whose title, process or class contains this text")

	return cmd
}

func runWatch(a *app, cmd *cobra.Command, _ []string) error {
	query, _ := cmd.Flags().GetString("query")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	onConsoleClose(a.log, stop)

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)

	err := a.dir.Watch(ctx, a.settings.WatchInterval, query, func(c directory.Change) {
		w := c.Window
		line := fmt.Sprintf("%s  %s  (%s, %s)", w.Handle, w.Title, w.ProcessName, w.ClassName)

		if c.Kind == directory.Appeared {
			added.Fprintln(a.out, "+ "+line)
		} else {
			removed.Fprintln(a.out, "- "+line)
		}
	})

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
