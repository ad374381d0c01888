package main

import (
	"io"

	"github.com/UnknownOlympus/asclepius/internal/config"
	"github.com/UnknownOlympus/asclepius/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd runs the dashboard in the terminal
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the dashboard in the terminal",
	Long: `Open the productivity map as a full-screen terminal view.

Keys: a/d/n filter, tab/shift+tab move between markers, enter opens or closes
the focused marker, esc closes, m switches popup/inline, v switches layout, q quits.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// The alternate screen owns stdout, so logs are dropped.
		a, err := newApp(config.MustLoad(), io.Discard)
		if err != nil {
			return err
		}

		return tui.Run(cmd.Context(), a.dash, a.mode)
	},
}
