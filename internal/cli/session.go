package cli

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"parkgrip/internal/config"
	"parkgrip/internal/directory"
	"parkgrip/internal/domain"
	"parkgrip/internal/eventbus"
	"parkgrip/internal/logging"
	"parkgrip/internal/provider"
)

// session bundles everything one run of a command needs
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	bus     eventbus.EventBus
	cleanup func() error
}

// openSession loads config, applies flag overrides and starts logging
func openSession(flags *globalFlags) (*session, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	logger, cleanup, err := logging.Setup(logging.Config{Path: cfg.LogFile, Debug: flags.debug})
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("session", uuid.NewString()))
	logger.Info("session started",
		zap.String("source", cfg.Source),
		zap.String("records_path", cfg.RecordsPath),
		zap.Duration("timeout", cfg.FetchTimeout()))

	bus := eventbus.New(logger)
	logEvents(bus, logger.Named("events"))

	return &session{
		cfg:     cfg,
		logger:  logger,
		bus:     bus,
		cleanup: cleanup,
	}, nil
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	svc := config.NewConfigService()

	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = svc.LoadFromPath(flags.configPath)
	} else {
		cfg, err = svc.LoadOrDefault(config.DefaultFileName)
	}
	if err != nil {
		return nil, err
	}

	if flags.source != "" {
		cfg.Source = flags.source
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Provider builds the data source described by the config
func (s *session) Provider() provider.Provider {
	return provider.New(s.cfg.Source, provider.Options{
		RecordsPath: s.cfg.RecordsPath,
		Timeout:     s.cfg.FetchTimeout(),
		Logger:      s.logger,
	})
}

// Directory builds an unloaded directory over the configured source
func (s *session) Directory() *directory.Directory {
	return directory.New(s.Provider(),
		directory.WithBus(s.bus),
		directory.WithLogger(s.logger))
}

// Close delivers queued events, stops the bus and flushes the log
func (s *session) Close() {
	s.bus.Close()
	if s.cleanup != nil {
		_ = s.cleanup()
	}
}

// logEvents records every directory event in the session log
func logEvents(bus eventbus.EventBus, logger *zap.Logger) {
	bus.Subscribe(eventbus.EventParksLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.ParksLoadedEvent); ok {
			logger.Info("parks loaded", zap.Int("count", ev.Count))
		}
	})
	bus.Subscribe(eventbus.EventParksLoadFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.ParksLoadFailedEvent); ok {
			logger.Warn("parks failed to load", zap.Error(ev.Err))
		}
	})
	bus.Subscribe(eventbus.EventSearchChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.SearchChangedEvent); ok {
			logger.Debug("search changed", zap.String("term", ev.Term), zap.Int("visible", ev.Visible))
		}
	})
	bus.Subscribe(eventbus.EventAmenitiesChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.AmenitiesChangedEvent); ok {
			logger.Debug("amenities changed", zap.Strings("selected", ev.Selected), zap.Int("visible", ev.Visible))
		}
	})
	bus.Subscribe(eventbus.EventFiltersCleared, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.FiltersClearedEvent); ok {
			logger.Debug("filters cleared", zap.Int("visible", ev.Visible))
		}
	})
}
