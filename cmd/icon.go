package cmd

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/wincenter/internal/config"
	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/icon"
)

func newIconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon <target>",
		Short: "Save a window's icon as PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  runWith(runIcon),
	}

	cmd.Flags().Int("size", 0, "icon size in pixels (default from config)")
	cmd.Flags().StringP("output", "o", "", "PNG file to write")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runIcon(a *app, cmd *cobra.Command, args []string) error {
	size := a.settings.IconSize
	if cmd.Flags().Changed("size") {
		size, _ = cmd.Flags().GetInt("size")
	}

	if size < 1 || size > config.MaxIconSize {
		return fmt.Errorf("%w: --size must be between 1 and %d", desktop.ErrInvalidArgument, config.MaxIconSize)
	}

	output, _ := cmd.Flags().GetString("output")

	h, title, err := a.resolveTarget(args[0])
	if err != nil {
		return err
	}

	img, ok := a.icons.Extract(h, size)
	if !ok {
		return fmt.Errorf("window '%s' has no icon", title)
	}

	if err := writePNG(output, img); err != nil {
		return err
	}

	a.status("Saved the icon of '%s' to %s", title, output)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := icon.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
