package config

import (
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("default config has validation errors: %v", ValidationErrors(errs))
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Mux.MaxPanes != 6 {
		t.Errorf("MaxPanes = %d, want 6", cfg.Mux.MaxPanes)
	}
	if cfg.Mux.HueStart != 180 {
		t.Errorf("HueStart = %v, want 180", cfg.Mux.HueStart)
	}
	if cfg.Mux.HueStep != 55 {
		t.Errorf("HueStep = %v, want 55", cfg.Mux.HueStep)
	}
	if cfg.Session.OutputBufferSize != 65536 {
		t.Errorf("OutputBufferSize = %d, want 65536", cfg.Session.OutputBufferSize)
	}
	if got := cfg.Session.CursorBlink(); got != 500*time.Millisecond {
		t.Errorf("CursorBlink() = %v, want 500ms", got)
	}
	if got := cfg.TUI.Tick(); got != 50*time.Millisecond {
		t.Errorf("Tick() = %v, want 50ms", got)
	}
}

func TestResolveShell(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		shellEnv string
		want     string
	}{
		{"explicit command wins", "/usr/bin/zsh", "/bin/sh", "/usr/bin/zsh"},
		{"falls back to SHELL", "", "/bin/sh", "/bin/sh"},
		{"falls back to bash", "", "", "/bin/bash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.shellEnv)
			sc := ShellConfig{Command: tt.command}
			if got := sc.ResolveShell(); got != tt.want {
				t.Errorf("ResolveShell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "tiny output buffer",
			mutate: func(c *Config) { c.Session.OutputBufferSize = 16 },
			field:  "session.output_buffer_size",
		},
		{
			name:   "zero blink",
			mutate: func(c *Config) { c.Session.CursorBlinkMs = 0 },
			field:  "session.cursor_blink_ms",
		},
		{
			name:   "too many panes",
			mutate: func(c *Config) { c.Mux.MaxPanes = 9 },
			field:  "mux.max_panes",
		},
		{
			name:   "zero panes",
			mutate: func(c *Config) { c.Mux.MaxPanes = 0 },
			field:  "mux.max_panes",
		},
		{
			name:   "negative hue step",
			mutate: func(c *Config) { c.Mux.HueStep = -10 },
			field:  "mux.hue_step",
		},
		{
			name:   "tick too fast",
			mutate: func(c *Config) { c.TUI.TickMs = 1 },
			field:  "tui.tick_ms",
		},
		{
			name:   "unknown dark mode",
			mutate: func(c *Config) { c.TUI.DarkMode = "dim" },
			field:  "tui.dark_mode",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
			field:  "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for _, err := range errs {
				if err.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %q in %v", tt.field, ValidationErrors(errs))
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "mux.max_panes", Value: 9, Message: "must be between 1 and 6"},
	}
	want := "mux.max_panes: must be between 1 and 6 (got: 9)"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should produce empty message")
	}
}
