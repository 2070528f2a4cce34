package app

import (
	"fmt"
	"sync"

	"github.com/easelhq/easel/internal/config"
	"github.com/easelhq/easel/internal/engine"
	"github.com/easelhq/easel/internal/engine/scene"
)

// Options configures the application, typically from command-line flags.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty means defaults.
	ConfigPath string

	// ScenePath is the drawing to open; overrides the configured one.
	ScenePath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}

// App owns the engine, configuration, and logger, and runs the editor loop.
type App struct {
	mu sync.Mutex

	opts    Options
	cfg     config.Config
	logger  *Logger
	engine  *engine.Engine
	watcher *config.Watcher

	scenePath string
	running   bool
	ui        *ui
}

// New creates the application: configuration is resolved, the scene
// document loaded, and the engine constructed.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	loggerCfg := DefaultLoggerConfig()
	loggerCfg.Level = ParseLogLevel(level)
	logger := NewLogger(loggerCfg)

	scenePath := cfg.Editor.ScenePath
	if opts.ScenePath != "" {
		scenePath = opts.ScenePath
	}

	sc := scene.New()
	if scenePath != "" {
		sc, err = scene.Load(scenePath)
		if err != nil {
			return nil, err
		}
		logger.Info("opened scene %s (%d shapes)", scenePath, sc.Len())
	}

	eng, err := engine.New(
		engine.WithScene(sc),
		engine.WithMaxActions(cfg.History.MaxActions),
	)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	a := &App{
		opts:      opts,
		cfg:       cfg,
		logger:    logger,
		engine:    eng,
		scenePath: scenePath,
	}

	if opts.ConfigPath != "" {
		a.watcher, err = config.NewWatcher(opts.ConfigPath, a.onConfigReload, func(err error) {
			logger.Warn("config reload failed: %v", err)
		})
		if err != nil {
			logger.Warn("config watching unavailable: %v", err)
		}
	}

	return a, nil
}

// Engine returns the scene-editing engine.
func (a *App) Engine() *engine.Engine { return a.engine }

// Logger returns the application logger.
func (a *App) Logger() *Logger { return a.logger }

// Config returns the resolved configuration.
func (a *App) Config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Run starts the terminal editor loop and blocks until the user quits or
// Shutdown is called.
func (a *App) Run() error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	a.running = true
	u, err := newUI(a)
	if err != nil {
		a.running = false
		a.mu.Unlock()
		return err
	}
	a.ui = u
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.running = false
		a.ui = nil
		a.mu.Unlock()
	}()

	return u.run()
}

// Shutdown releases resources and interrupts a running editor loop. Safe to
// call multiple times and from signal handlers.
func (a *App) Shutdown() {
	a.mu.Lock()
	u := a.ui
	w := a.watcher
	a.watcher = nil
	a.mu.Unlock()

	if u != nil {
		u.interrupt()
	}
	if w != nil {
		if err := w.Close(); err != nil {
			a.logger.Warn("closing config watcher: %v", err)
		}
	}
}

// SaveScene writes the drawing back to its document, when one is set.
func (a *App) SaveScene() error {
	if a.scenePath == "" {
		return nil
	}
	if err := a.engine.SaveScene(a.scenePath, ""); err != nil {
		return err
	}
	a.logger.Debug("saved scene %s", a.scenePath)
	return nil
}

// onConfigReload applies a live-reloaded configuration. Only the log level
// takes effect immediately; the history bound applies on next start.
func (a *App) onConfigReload(cfg config.Config) {
	a.mu.Lock()
	old := a.cfg
	a.cfg = cfg
	a.mu.Unlock()

	a.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	if cfg.History.MaxActions != old.History.MaxActions {
		a.logger.Info("history.max_actions changed to %d; applies on restart",
			cfg.History.MaxActions)
	}
	a.logger.Info("configuration reloaded")
}
