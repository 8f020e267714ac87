// Package config loads the wincenter YAML configuration file.
package config

import (
	"fmt"
	"time"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/timeouts"
)

const (
	DefaultIconSize       = 18
	DefaultIconCacheLimit = 512
	MaxIconSize           = 256
)

// Config is the effective configuration
type Config struct {
	// Margin is the default distance in pixels between a snapped window's
	// visible frame and the monitor edges
	Margin int `yaml:"margin"`
	// Corner is the default corner for snapping
	Corner string `yaml:"corner"`

	IconSize       int `yaml:"icon_size"`
	IconCacheLimit int `yaml:"icon_cache_limit"`

	MoveEndDelay  time.Duration `yaml:"move_end_delay"`
	WatchInterval time.Duration `yaml:"watch_interval"`

	// LogDir overrides the log file directory
	LogDir string `yaml:"log_dir"`
}

// Defaults returns the configuration used when no file exists
func Defaults() *Config {
	return &Config{
		Margin:         0,
		Corner:         desktop.BottomRight.String(),
		IconSize:       DefaultIconSize,
		IconCacheLimit: DefaultIconCacheLimit,
		MoveEndDelay:   timeouts.MoveEndDelay,
		WatchInterval:  timeouts.WatchInterval,
	}
}

// ValidationError reports an invalid configuration value
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks every value is in range
func (c *Config) Validate() error {
	if c.Margin < 0 {
		return &ValidationError{Path: "margin", Err: fmt.Errorf("%w: margin must be >= 0", desktop.ErrInvalidArgument)}
	}

	if _, err := desktop.ParseCorner(c.Corner); err != nil {
		return &ValidationError{Path: "corner", Err: err}
	}

	if c.IconSize < 1 || c.IconSize > MaxIconSize {
		return &ValidationError{Path: "icon_size", Err: fmt.Errorf("%w: icon_size must be between 1 and %d", desktop.ErrInvalidArgument, MaxIconSize)}
	}

	if c.IconCacheLimit < 0 {
		return &ValidationError{Path: "icon_cache_limit", Err: fmt.Errorf("%w: icon_cache_limit must be >= 0", desktop.ErrInvalidArgument)}
	}

	if c.MoveEndDelay < 0 {
		return &ValidationError{Path: "move_end_delay", Err: fmt.Errorf("%w: move_end_delay must be >= 0", desktop.ErrInvalidArgument)}
	}

	if c.WatchInterval <= 0 {
		return &ValidationError{Path: "watch_interval", Err: fmt.Errorf("%w: watch_interval must be > 0", desktop.ErrInvalidArgument)}
	}

	return nil
}

// SnapCorner returns the parsed default corner
func (c *Config) SnapCorner() desktop.Corner {
	corner, err := desktop.ParseCorner(c.Corner)
	if err != nil {
		return desktop.BottomRight
	}

	return corner
}
