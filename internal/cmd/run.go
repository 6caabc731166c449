package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sigmaterm/sigmaterm/internal/config"
	"github.com/sigmaterm/sigmaterm/internal/event"
	"github.com/sigmaterm/sigmaterm/internal/logging"
	"github.com/sigmaterm/sigmaterm/internal/mux"
	"github.com/sigmaterm/sigmaterm/internal/session"
	"github.com/sigmaterm/sigmaterm/internal/session/process"
	"github.com/sigmaterm/sigmaterm/internal/tui"
)

// runRoot wires config, logging, the multiplexer and the TUI together and
// blocks until the TUI exits.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.Nop()
	if cfg.Logging.Enabled {
		log, err = logging.New(cfg.Logging.ResolveLogDir(), cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer log.Close()
	}

	bus := event.NewBus(log)
	busLog := log.WithComponent("event")
	bus.SubscribeAll(func(e event.Event) {
		busLog.Debug("event", "type", e.EventType())
	})

	m := mux.New(mux.Config{
		MaxPanes: cfg.Mux.MaxPanes,
		HueStart: cfg.Mux.HueStart,
		HueStep:  cfg.Mux.HueStep,
		Session: session.Config{
			Shell:       cfg.Shell.ResolveShell(),
			ShellArgs:   cfg.Shell.Args,
			BufferSize:  cfg.Session.OutputBufferSize,
			CursorBlink: cfg.Session.CursorBlink(),
		},
	}, process.UnixSpawner{}, bus, log)
	m.SetDarkMode(tui.ResolveDarkMode(cfg.TUI.DarkMode))

	app := tui.New(m, cfg.TUI.Tick(), log)
	if err := app.Run(); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}
	return nil
}
