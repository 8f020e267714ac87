package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/timeouts"
)

// status prints a one-line confirmation of a completed action
func (a *app) status(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(a.out, format+"\n", args...)
}

func newCenterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "center <target>",
		Short: "Center a window on its monitor's work area",
		Long: "Restore and activate the window, then center it on the work area of the\n" +
			"monitor it is on. <target> is a window handle or a search query.",
		Args: cobra.ExactArgs(1),
		RunE: runWith(func(a *app, _ *cobra.Command, args []string) error {
			h, title, err := a.resolveTarget(args[0])
			if err != nil {
				return err
			}

			p, err := a.engine.CenterOn(h)
			if err != nil {
				return fmt.Errorf("cannot move window: %w", err)
			}

			a.status("Moved '%s' to the center %s", title, p)
			return nil
		}),
	}
}

func newSnapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snap <target>",
		Short: "Snap a window into a monitor corner",
		Long: "Move the window so its visible frame sits --margin pixels from a corner of\n" +
			"its monitor. The whole monitor is used, taskbar included.",
		Args: cobra.ExactArgs(1),
		RunE: runWith(runSnap),
	}

	cmd.Flags().String("corner", "", "top-left, bottom-left, top-right or bottom-right (default from config)")
	cmd.Flags().Int("margin", 0, "distance in pixels from the monitor edges (default from config)")

	return cmd
}

func runSnap(a *app, cmd *cobra.Command, args []string) error {
	corner := a.settings.SnapCorner()
	if cmd.Flags().Changed("corner") {
		name, _ := cmd.Flags().GetString("corner")

		parsed, err := desktop.ParseCorner(name)
		if err != nil {
			return err
		}

		corner = parsed
	}

	margin := a.settings.Margin
	if cmd.Flags().Changed("margin") {
		margin, _ = cmd.Flags().GetInt("margin")
	}

	h, title, err := a.resolveTarget(args[0])
	if err != nil {
		return err
	}

	p, err := a.engine.SnapToCorner(h, corner, margin)
	if err != nil {
		return fmt.Errorf("cannot move window: %w", err)
	}

	a.status("Moved '%s' to the %s corner %s", title, corner, p)
	return nil
}

func newShowCmd(name, short string) *cobra.Command {
	past := map[string]string{
		"restore":  "Restored",
		"minimize": "Minimized",
		"maximize": "Maximized",
	}[name]

	return &cobra.Command{
		Use:   name + " <target>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: runWith(func(a *app, _ *cobra.Command, args []string) error {
			h, title, err := a.resolveTarget(args[0])
			if err != nil {
				return err
			}

			var action func(desktop.Handle) error
			switch name {
			case "restore":
				action = a.state.Restore
			case "minimize":
				action = a.state.Minimize
			default:
				action = a.state.Maximize
			}

			if err := action(h); err != nil {
				return err
			}

			a.status("%s '%s'", past, title)
			return nil
		}),
	}
}

func newFrontCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "front <target>",
		Short: "Bring a window to the foreground",
		Args:  cobra.ExactArgs(1),
		RunE: runWith(func(a *app, _ *cobra.Command, args []string) error {
			h, title, err := a.resolveTarget(args[0])
			if err != nil {
				return err
			}

			if err := a.state.BringToFront(h); err != nil {
				return err
			}

			a.status("Brought '%s' to the front", title)
			return nil
		}),
	}
}

func newTopmostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topmost <target>",
		Short: "Keep a window above all others",
		Args:  cobra.ExactArgs(1),
		RunE: runWith(func(a *app, cmd *cobra.Command, args []string) error {
			off, _ := cmd.Flags().GetBool("off")

			h, title, err := a.resolveTarget(args[0])
			if err != nil {
				return err
			}

			if err := a.state.SetTopmost(h, !off); err != nil {
				return err
			}

			if off {
				a.status("'%s' is no longer always on top", title)
			} else {
				a.status("'%s' is now always on top", title)
			}

			return nil
		}),
	}

	cmd.Flags().Bool("off", false, "clear the always-on-top flag instead")

	return cmd
}

func newCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <target>",
		Short: "Ask a window to close",
		Long: "Post a close request to the window. The application may ask to save or\n" +
			"refuse; the window list is checked again shortly after.",
		Args: cobra.ExactArgs(1),
		RunE: runWith(func(a *app, _ *cobra.Command, args []string) error {
			h, title, err := a.resolveTarget(args[0])
			if err != nil {
				return err
			}

			if err := a.state.RequestClose(h); err != nil {
				return err
			}

			a.status("Asked '%s' to close", title)

			sleep(timeouts.CloseRefreshDelay)

			if _, open := a.dir.Lookup(h); open {
				a.log.Info("Window is still open", slog.String("title", title))
			}

			return nil
		}),
	}
}
