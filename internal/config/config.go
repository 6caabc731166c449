// Package config defines sigmaterm's configuration, loaded through viper
// from a YAML file, environment variables (SIGMATERM_ prefix) and defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete sigmaterm configuration.
type Config struct {
	Shell   ShellConfig   `mapstructure:"shell"`
	Session SessionConfig `mapstructure:"session"`
	Mux     MuxConfig     `mapstructure:"mux"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ShellConfig controls the child process spawned for each pane.
type ShellConfig struct {
	// Command is the shell executable. If empty, $SHELL is used, falling
	// back to /bin/bash.
	Command string `mapstructure:"command"`
	// Args are extra arguments passed to the shell.
	Args []string `mapstructure:"args"`
}

// SessionConfig controls per-pane session behavior.
type SessionConfig struct {
	// OutputBufferSize is the output buffer cap in bytes. Oldest output is
	// evicted beyond this size.
	OutputBufferSize int `mapstructure:"output_buffer_size"`
	// CursorBlinkMs is the cursor blink half-period in milliseconds.
	CursorBlinkMs int `mapstructure:"cursor_blink_ms"`
}

// MuxConfig controls the pane multiplexer.
type MuxConfig struct {
	// MaxPanes is the maximum number of simultaneous panes.
	MaxPanes int `mapstructure:"max_panes"`
	// HueStart is the accent hue of the first pane, in degrees.
	HueStart float64 `mapstructure:"hue_start"`
	// HueStep is added to the hue for each subsequent pane.
	HueStep float64 `mapstructure:"hue_step"`
}

// TUIConfig controls the terminal UI.
type TUIConfig struct {
	// TickMs is the render/poll tick interval in milliseconds.
	TickMs int `mapstructure:"tick_ms"`
	// DarkMode selects the color mode: "dark", "light" or "auto".
	// Auto detects the terminal background.
	DarkMode string `mapstructure:"dark_mode"`
}

// LoggingConfig controls debug logging.
type LoggingConfig struct {
	// Enabled controls whether file logging is enabled (default: true).
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Dir is the directory for log files. If empty, a directory under the
	// user cache dir is used.
	Dir string `mapstructure:"dir"`
}

// CursorBlink returns the cursor blink half-period as a time.Duration.
func (c *SessionConfig) CursorBlink() time.Duration {
	return time.Duration(c.CursorBlinkMs) * time.Millisecond
}

// Tick returns the TUI tick interval as a time.Duration.
func (c *TUIConfig) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Command: "",
			Args:    nil,
		},
		Session: SessionConfig{
			OutputBufferSize: 65536,
			CursorBlinkMs:    500,
		},
		Mux: MuxConfig{
			MaxPanes: 6,
			HueStart: 180,
			HueStep:  55,
		},
		TUI: TUIConfig{
			TickMs:   50,
			DarkMode: "auto",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("shell.command", defaults.Shell.Command)
	viper.SetDefault("shell.args", defaults.Shell.Args)

	viper.SetDefault("session.output_buffer_size", defaults.Session.OutputBufferSize)
	viper.SetDefault("session.cursor_blink_ms", defaults.Session.CursorBlinkMs)

	viper.SetDefault("mux.max_panes", defaults.Mux.MaxPanes)
	viper.SetDefault("mux.hue_start", defaults.Mux.HueStart)
	viper.SetDefault("mux.hue_step", defaults.Mux.HueStep)

	viper.SetDefault("tui.tick_ms", defaults.TUI.TickMs)
	viper.SetDefault("tui.dark_mode", defaults.TUI.DarkMode)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if
// loading fails.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ResolveShell returns the shell command to spawn, applying the $SHELL and
// /bin/bash fallbacks.
func (c *ShellConfig) ResolveShell() string {
	if c.Command != "" {
		return c.Command
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/bash"
}

// ResolveLogDir returns the directory for log files, creating a default
// under the user cache dir when unset.
func (c *LoggingConfig) ResolveLogDir() string {
	if !c.Enabled {
		return ""
	}
	if c.Dir != "" {
		return c.Dir
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return ".sigmaterm"
	}
	return filepath.Join(cache, "sigmaterm")
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sigmaterm")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sigmaterm"
	}
	return filepath.Join(home, ".config", "sigmaterm")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
