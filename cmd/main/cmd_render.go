package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"github.com/UnknownOlympus/asclepius/internal/config"
	"github.com/UnknownOlympus/asclepius/internal/lib/logger/sl"
	"github.com/UnknownOlympus/asclepius/internal/render"
	"github.com/UnknownOlympus/asclepius/internal/services/dashboard"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	filter   string
	mode     string
	layout   string
	selected int
	out      string
}

var renderOpts renderFlags

// renderCmd exports a single dashboard state as a standalone HTML file
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the dashboard for one state as a standalone HTML page",
	Long: `Render the dashboard with the stylesheet inlined, so the file opens without a server.

Example:
  asclepius render --filter doctor --mode inline --out dashboard.html`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderOpts.filter, "filter", "", "role filter: all, doctor or nurse")
	renderCmd.Flags().StringVar(&renderOpts.mode, "mode", "", "detail mode: popup or inline (default from config)")
	renderCmd.Flags().StringVar(&renderOpts.layout, "layout", "", "layout: desktop or mobile")
	renderCmd.Flags().IntVar(&renderOpts.selected, "selected", 0, "id of the staff member whose popup is open")
	renderCmd.Flags().StringVarP(&renderOpts.out, "out", "o", "-", "output file, - for stdout")
}

func runRender(cmd *cobra.Command, _ []string) error {
	a, err := newApp(config.MustLoad(), os.Stderr)
	if err != nil {
		return err
	}

	state, err := renderOpts.state(a.mode)
	if err != nil {
		return err
	}

	templates := render.MustLoad()
	export := func(w io.Writer) error {
		return exportPage(cmd.Context(), a.dash, templates, state, w)
	}

	if renderOpts.out == "-" || renderOpts.out == "" {
		err = export(cmd.OutOrStdout())
	} else {
		err = writeFile(renderOpts.out, export)
	}
	if err != nil {
		a.log.ErrorContext(cmd.Context(), "export failed", sl.Err(err))
		return err
	}

	a.log.InfoContext(cmd.Context(), "dashboard exported", "out", renderOpts.out, "state", state.Query().Encode())
	return nil
}

// writeFile creates path and runs write on it. A failed close is returned as an error.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	return write(f)
}

// state turns the flags into a dashboard state. Unlike query strings, bad flag values are
// errors. A selection that cannot be shown is rejected by exportPage, which has the roster.
func (f renderFlags) state(defaultMode dashboard.Mode) (dashboard.State, error) {
	values := url.Values{}
	if f.filter != "" {
		values.Set("filter", f.filter)
	}
	if f.mode != "" {
		values.Set("mode", f.mode)
	}
	if f.layout != "" {
		values.Set("layout", f.layout)
	}
	if f.selected != dashboard.NoSelection {
		values.Set("selected", strconv.Itoa(f.selected))
	}

	state, errs := dashboard.StateFromQuery(values, dashboard.NewState(defaultMode))
	if len(errs) > 0 {
		return state, errors.Join(errs...)
	}

	return state, nil
}

// exportPage writes the standalone page for state to w.
func exportPage(ctx context.Context, dash *dashboard.Dashboard, templates *render.Templates,
	state dashboard.State, w io.Writer) error {
	view, err := dash.View(ctx, state, dashboard.SurfaceExport)
	if err != nil {
		return err
	}

	if view.State.Selected != state.Selected {
		return fmt.Errorf("%w: staff %d is unknown, hidden by filter %q or not shown as a popup in %s mode",
			dashboard.ErrBadSelection, state.Selected, state.Filter, state.Mode)
	}

	return templates.Page(w, render.PageData{View: view, Standalone: true, AssetVer: version})
}
