package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/UnknownOlympus/asclepius/internal/config"
	"github.com/UnknownOlympus/asclepius/internal/lib/logger/sl"
	"github.com/UnknownOlympus/asclepius/internal/metrics"
	"github.com/UnknownOlympus/asclepius/internal/repository"
	"github.com/UnknownOlympus/asclepius/internal/services/dashboard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// app is the wiring shared by every command.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	reg     *prometheus.Registry
	metrics *metrics.Metrics
	repo    repository.StaffRepoIface
	dash    *dashboard.Dashboard
	mode    dashboard.Mode
}

func newApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	log := sl.New(cfg.Env, logOut)

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	mode, err := dashboard.ParseMode(cfg.Dashboard.Mode)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard mode: %w", err)
	}

	repo := newRepository(cfg.Roster, appMetrics)
	text := dashboard.PageText{Title: cfg.Dashboard.Title, Subtitle: cfg.Dashboard.Subtitle}

	return &app{
		cfg:     cfg,
		log:     log,
		reg:     reg,
		metrics: appMetrics,
		repo:    repo,
		dash:    dashboard.NewDashboard(log, repo, appMetrics, text),
		mode:    mode,
	}, nil
}

// newRepository picks the roster file when one is configured and the built-in sample otherwise.
func newRepository(cfg config.RosterConfig, m *metrics.Metrics) repository.StaffRepoIface {
	if cfg.File != "" {
		return repository.NewFileRepository(cfg.File, m)
	}
	return repository.NewFixtureRepository(m)
}
