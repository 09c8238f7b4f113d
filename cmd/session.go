package cmd

import (
	"github.com/mj1618/winstack/internal/config"
	"github.com/mj1618/winstack/internal/logging"
	"github.com/mj1618/winstack/internal/signal"
	"github.com/mj1618/winstack/internal/template"
	"github.com/mj1618/winstack/internal/window"
	"github.com/spf13/cobra"
)

// session is everything one command invocation needs to manage windows.
type session struct {
	cfg     *config.Config
	log     *logging.Logger
	catalog *template.Catalog
	bus     *signal.Bus
	manager *window.Manager
}

// loadConfig reads config from --config-dir and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := rootCmd.PersistentFlags().GetString("config-dir")
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if path, _ := rootCmd.PersistentFlags().GetString("templates"); path != "" {
		cfg.Templates = path
	}
	if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

// loadCatalog returns the configured template file, or the built-in catalog.
func loadCatalog(cfg *config.Config) (*template.Catalog, error) {
	if cfg.Templates != "" {
		return template.Load(cfg.Templates)
	}
	return template.Default()
}

// newSession wires config, logging, templates, the signal bus and a manager.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	opts := []logging.Option{logging.WithConsole(), logging.WithLevel(cfg.LogLevel)}
	if cfg.LogFile != "" {
		opts = append(opts, logging.WithFile(cfg.LogFile))
	}
	log, err := logging.New(opts...)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Close()
		return nil, err
	}

	bus := signal.NewBus(log.Logger)
	manager := window.NewManager(catalog, bus, window.Config{
		Viewport:           cfg.Viewport,
		MenuHeight:         cfg.MenuHeight,
		CascadeDistance:    cfg.CascadeDistance,
		ArrangeLimitFactor: cfg.ArrangeLimitFactor,
		Source:             cfg.Source,
		Logger:             log.Logger,
	})

	return &session{cfg: cfg, log: log, catalog: catalog, bus: bus, manager: manager}, nil
}

func (s *session) Close() error {
	return s.log.Close()
}
