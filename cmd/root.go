package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/wincenter/internal/config"
	"github.com/Norgate-AV/wincenter/internal/directory"
	"github.com/Norgate-AV/wincenter/internal/icon"
	"github.com/Norgate-AV/wincenter/internal/interfaces"
	"github.com/Norgate-AV/wincenter/internal/logger"
	"github.com/Norgate-AV/wincenter/internal/placement"
	"github.com/Norgate-AV/wincenter/internal/process"
	"github.com/Norgate-AV/wincenter/internal/version"
	"github.com/Norgate-AV/wincenter/internal/winstate"
)

// Injectable for testing
var (
	newBackend       = platformBackend
	newProcessNamer  = func() interfaces.ProcessNamer { return process.NewLookup() }
	initializeLogger = defaultLogger
	sleep            = time.Sleep
)

// RootCmd is the root command for the wincenter CLI application.
var RootCmd = NewRootCmd()

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wincenter",
		Short: "wincenter - Center, snap and manage desktop windows",
		Long: "wincenter lists the visible top-level windows and moves them to the center\n" +
			"of their monitor's work area or into a monitor corner without resizing them.",
		Version:      version.GetVersion(),
		Args:         cobra.NoArgs,
		RunE:         Execute,
		SilenceUsage: true, // Don't show usage on runtime errors
	}

	// Set custom version template to show full version info
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	root.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	root.PersistentFlags().StringP("config", "c", "", "path to the config file (default: $WINCENTER_CONFIG or the user config dir)")

	root.AddCommand(
		newListCmd(),
		newCenterCmd(),
		newSnapCmd(),
		newShowCmd("restore", "Restore a minimized or maximized window"),
		newShowCmd("minimize", "Minimize a window"),
		newShowCmd("maximize", "Maximize a window"),
		newFrontCmd(),
		newTopmostCmd(),
		newCloseCmd(),
		newIconCmd(),
		newWatchCmd(),
	)

	return root
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *Config, opts logger.LoggerOptions, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	if err := logger.PrintLogFile(nil, opts); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logger.GetLogPath(opts))
			exitFunc(1)
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
	}

	exitFunc(0)
	return nil // Won't actually reach here due to exitFunc
}

// defaultLogger creates the file and console logger
func defaultLogger(cfg *Config, settings *config.Config) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		LogDir:   settings.LogDir,
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// Execute runs the root command: it only handles --logs and otherwise
// prints help.
func Execute(cmd *cobra.Command, args []string) error {
	cfg := NewConfigFromFlags(cmd)

	settings, err := cfg.LoadSettings()
	if err != nil {
		settings = config.Defaults()
	}

	if err := handleLogsFlag(cfg, logger.LoggerOptions{LogDir: settings.LogDir}, os.Exit); err != nil {
		return err
	}

	return cmd.Help()
}

// app holds everything a subcommand needs
type app struct {
	cfg      *Config
	settings *config.Config
	log      logger.LoggerInterface
	out      io.Writer

	desk   interfaces.Desktop
	dir    *directory.Directory
	state  *winstate.Controller
	engine *placement.Engine
	icons  *icon.Extractor
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg := NewConfigFromFlags(cmd)

	settings, err := cfg.LoadSettings()
	if err != nil {
		return nil, err
	}

	log, err := initializeLogger(cfg, settings)
	if err != nil {
		return nil, err
	}

	log.Debug("Starting wincenter",
		slog.String("command", cmd.Name()),
		slog.String("version", version.GetFullVersion()),
		slog.Bool("devBuild", version.IsDevBuild()),
	)

	desk, err := newBackend(log)
	if err != nil {
		log.Close()
		return nil, err
	}

	state := winstate.New(desk, log)

	return &app{
		cfg:      cfg,
		settings: settings,
		log:      log,
		out:      cmd.OutOrStdout(),
		desk:     desk,
		dir:      directory.New(desk, newProcessNamer(), log),
		state:    state,
		engine:   placement.NewEngine(desk, state, log, placement.WithMoveEndDelay(settings.MoveEndDelay)),
		icons:    icon.NewExtractor(desk, log),
	}, nil
}

// runWith builds the app and runs fn, logging any panic with its stack
func runWith(fn func(a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		defer a.log.Close()

		// Recover from panics and log them
		defer func() {
			if r := recover(); r != nil {
				a.log.Error("PANIC RECOVERED",
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)

				fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
				fmt.Fprintf(os.Stderr, "Check log file for details\n")
				err = fmt.Errorf("panic: %v", r)
			}
		}()

		if err := fn(a, cmd, args); err != nil {
			a.log.Debug("Command failed", slog.String("command", cmd.Name()), slog.Any("error", err))
			return err
		}

		return nil
	}
}
