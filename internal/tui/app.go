package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/datagrid/internal/dataset"
	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/logging"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	bus     *event.Bus
	watcher *dataset.Watcher
	logger  *logging.Logger
}

// New creates a new TUI application. A nil watcher disables live reload.
func New(opts Options, watcher *dataset.Watcher) *App {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	if opts.Bus == nil {
		opts.Bus = event.NewBus(event.WithLogger(logger))
	}
	return &App{
		model:   NewModel(opts),
		bus:     opts.Bus,
		watcher: watcher,
		logger:  logger.WithComponent("app"),
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	// The drag surface must be restored on every exit path.
	defer a.model.Close()

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	sub := a.bus.SubscribeAll(func(e event.Event) {
		a.logger.Debug("grid event", "type", e.EventType())
	})
	defer a.bus.Unsubscribe(sub)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	if a.watcher != nil {
		a.watcher.SetPublisher(a.bus)
		a.watcher.SetReloadCallback(func(ds *dataset.Dataset) {
			a.program.Send(DatasetReloaded(ds))
		})
		a.watcher.SetErrorCallback(func(err error) {
			a.program.Send(DatasetError(err))
		})
		a.watcher.Start()
		defer a.watcher.Stop()
	}

	final, err := a.program.Run()
	if m, ok := final.(Model); ok {
		m.Close()
	}

	signal.Stop(sigChan)

	return err
}
