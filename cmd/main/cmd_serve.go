package main

import (
	"os"

	"github.com/UnknownOlympus/asclepius/internal/config"
	"github.com/UnknownOlympus/asclepius/internal/render"
	"github.com/UnknownOlympus/asclepius/internal/server"
	"github.com/UnknownOlympus/asclepius/internal/services/dashboard"
	"github.com/spf13/cobra"
)

// serveCmd runs the web dashboard
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Serve the dashboard page, the JSON API, /healthz and /metrics.

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(config.MustLoad(), os.Stdout)
	if err != nil {
		return err
	}

	templates := render.MustLoad()
	deps := &server.Deps{
		Log:       a.log,
		Dashboard: a.dash,
		Templates: templates,
		Defaults:  dashboard.NewState(a.mode),
		AssetVer:  version,
	}
	health := server.NewHealthChecker(a.repo, templates, a.log)
	handler := server.NewRouter(deps, health, a.reg, a.metrics)

	a.log.InfoContext(ctx, "Starting dashboard server",
		"address", a.cfg.HTTP.Address, "mode", a.mode, "roster", a.cfg.Roster.File)

	if err = server.Start(ctx, a.log, a.cfg.HTTP, handler); err != nil {
		return err
	}

	a.log.InfoContext(ctx, "Application stopped gracefully...")
	return nil
}
