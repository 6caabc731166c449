package tui

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sigmaterm/sigmaterm/internal/logging"
	"github.com/sigmaterm/sigmaterm/internal/mux"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	mux     *mux.Multiplexer
}

// New creates a new TUI application
func New(m *mux.Multiplexer, tick time.Duration, log *logging.Logger) *App {
	return &App{
		model: NewModel(m, tick, log),
		mux:   m,
	}
}

// Run starts the TUI application and blocks until it exits. Every live
// shell is terminated before Run returns, whatever the exit path.
func (a *App) Run() error {
	defer a.mux.Shutdown()

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Forward termination signals as a quit so the alt screen is restored
	// and the shells are reaped.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()
	return err
}
