package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sigmaterm/sigmaterm/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify sigmaterm configuration",
	Long: `View or modify sigmaterm configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  sigmaterm config set mux.max_panes 4
  sigmaterm config set session.cursor_blink_ms 250
  sigmaterm config set tui.dark_mode light

Valid keys:
  shell.command              - Shell to spawn in each pane
  session.output_buffer_size - Per-pane output buffer cap in bytes
  session.cursor_blink_ms    - Cursor blink half-period in milliseconds
  mux.max_panes              - Maximum simultaneous panes
  mux.hue_start              - Accent hue of the first pane (degrees)
  mux.hue_step               - Accent hue step per pane (degrees)
  tui.tick_ms                - Render tick interval in milliseconds
  tui.dark_mode              - Color mode: auto, dark, light
  logging.enabled            - Write a debug log file (true/false)
  logging.level              - Log level: debug, info, warn, error`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/sigmaterm/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Current configuration:")
	fmt.Println()

	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("shell:")
	fmt.Printf("  command: %s\n", cfg.Shell.ResolveShell())
	if len(cfg.Shell.Args) > 0 {
		fmt.Printf("  args: %s\n", strings.Join(cfg.Shell.Args, " "))
	}

	fmt.Println("session:")
	fmt.Printf("  output_buffer_size: %d\n", cfg.Session.OutputBufferSize)
	fmt.Printf("  cursor_blink_ms: %d\n", cfg.Session.CursorBlinkMs)

	fmt.Println("mux:")
	fmt.Printf("  max_panes: %d\n", cfg.Mux.MaxPanes)
	fmt.Printf("  hue_start: %g\n", cfg.Mux.HueStart)
	fmt.Printf("  hue_step: %g\n", cfg.Mux.HueStep)

	fmt.Println("tui:")
	fmt.Printf("  tick_ms: %d\n", cfg.TUI.TickMs)
	fmt.Printf("  dark_mode: %s\n", cfg.TUI.DarkMode)

	fmt.Println("logging:")
	fmt.Printf("  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Printf("  level: %s\n", cfg.Logging.Level)
	fmt.Printf("  dir: %s\n", cfg.Logging.ResolveLogDir())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Validate the key exists
	validKeys := map[string]string{
		"shell.command":              "string",
		"session.output_buffer_size": "int",
		"session.cursor_blink_ms":    "int",
		"mux.max_panes":              "int",
		"mux.hue_start":              "float",
		"mux.hue_step":               "float",
		"tui.tick_ms":                "int",
		"tui.dark_mode":              "string",
		"logging.enabled":            "bool",
		"logging.level":              "string",
		"logging.dir":                "string",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'sigmaterm config set --help' to see valid keys", key)
	}

	typedValue, err := parseConfigValue(key, keyType, value)
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile)

	return nil
}

// parseConfigValue converts a raw value string into the typed value stored
// in the config file, rejecting values the config layer would not validate.
func parseConfigValue(key, keyType, value string) (interface{}, error) {
	switch keyType {
	case "string":
		switch key {
		case "tui.dark_mode":
			if !contains(config.ValidDarkModes(), value) {
				return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(config.ValidDarkModes(), ", "))
			}
		case "logging.level":
			if !contains(config.ValidLogLevels(), value) {
				return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(config.ValidLogLevels(), ", "))
			}
		}
		return value, nil
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	case "float":
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected number", key)
		}
		return floatVal, nil
	}
	return value, nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'sigmaterm config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configContent := `# Sigmaterm Configuration

# Shell spawned in each pane. Defaults to $SHELL, then /bin/bash.
shell:
  command: ""
  args: []

# Per-pane session settings
session:
  # Output buffer cap in bytes; oldest data is evicted past this
  output_buffer_size: 65536
  # Cursor blink half-period in milliseconds
  cursor_blink_ms: 500

# Pane multiplexer settings
mux:
  # Maximum simultaneous panes
  max_panes: 6
  # Accent hue of the first pane and the step per new pane, in degrees
  hue_start: 180
  hue_step: 55

# Terminal UI settings
tui:
  # Render tick interval in milliseconds
  tick_ms: 50
  # Color mode: auto (probe the terminal), dark, light
  dark_mode: auto

# Debug logging
logging:
  enabled: false
  level: info
  # Log directory; defaults to the user cache dir when empty
  dir: ""
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println("Edit this file to customize sigmaterm's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Default path: %s (not created)\n", configFile)
	}

	fmt.Println("\nSearch paths:")
	fmt.Printf("  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Printf("  2. $HOME/.config/sigmaterm/config.yaml\n")
	fmt.Printf("  3. ./config.yaml (current directory)\n")
	fmt.Println("\nEnvironment variables: SIGMATERM_* (e.g., SIGMATERM_MUX_MAX_PANES)")

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
