package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/PuerkitoBio/goquery"
	"github.com/UnknownOlympus/asclepius/internal/config"
	"github.com/UnknownOlympus/asclepius/internal/lib/logger/sl"
	"github.com/UnknownOlympus/asclepius/internal/render"
	"github.com/UnknownOlympus/asclepius/internal/repository"
	"github.com/UnknownOlympus/asclepius/internal/services/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFlags_State(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		state, err := renderFlags{out: "-"}.state(dashboard.ModeInline)
		require.NoError(t, err)
		assert.Equal(t, dashboard.NewState(dashboard.ModeInline), state)
	})

	t.Run("every flag", func(t *testing.T) {
		state, err := renderFlags{filter: "doctor", mode: "popup", layout: "mobile", selected: 3}.state(dashboard.ModeInline)
		require.NoError(t, err)
		assert.Equal(t, dashboard.State{
			Filter:   dashboard.FilterDoctor,
			Selected: 3,
			Mode:     dashboard.ModePopup,
			Layout:   dashboard.LayoutMobile,
		}, state)
	})

	t.Run("bad values are errors", func(t *testing.T) {
		_, err := renderFlags{filter: "surgeon", mode: "modal"}.state(dashboard.ModePopup)
		require.Error(t, err)
		assert.True(t, errors.Is(err, dashboard.ErrUnknownFilter))
		assert.True(t, errors.Is(err, dashboard.ErrUnknownMode))
	})
}

func TestExportPage(t *testing.T) {
	dash := dashboard.NewDashboard(sl.Discard(), repository.NewFixtureRepository(nil), nil,
		dashboard.PageText{Title: "Productivity Map: Medical Staff"})

	state := dashboard.NewState(dashboard.ModePopup)
	state.Filter = dashboard.FilterNurse
	state.Selected = 4

	var buf bytes.Buffer
	require.NoError(t, exportPage(context.Background(), dash, render.MustLoad(), state, &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Find("style").Length(), "stylesheet is inlined")
	assert.Equal(t, 0, doc.Find(`link[rel="stylesheet"]`).Length())
	assert.Equal(t, 4, doc.Find("a.marker").Length())
	assert.Equal(t, "Enf. López", doc.Find(".popup__name").Text())
}

func TestNewRepository(t *testing.T) {
	_, ok := newRepository(config.RosterConfig{}, nil).(*repository.FixtureRepository)
	assert.True(t, ok)

	_, ok = newRepository(config.RosterConfig{File: "roster.yaml"}, nil).(*repository.FileRepository)
	assert.True(t, ok)
}

func TestNewApp(t *testing.T) {
	cfg := &config.Config{Env: sl.EnvLocal, Dashboard: config.DashboardConfig{Mode: config.ModeInline}}

	a, err := newApp(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, dashboard.ModeInline, a.mode)
	assert.NotNil(t, a.dash)

	cfg.Dashboard.Mode = "modal"
	_, err = newApp(cfg, &bytes.Buffer{})
	require.Error(t, err)
}

func TestExportPage_RejectsHiddenSelection(t *testing.T) {
	dash := dashboard.NewDashboard(sl.Discard(), repository.NewFixtureRepository(nil), nil,
		dashboard.PageText{Title: "Productivity Map: Medical Staff"})
	templates := render.MustLoad()

	tests := []struct {
		name  string
		flags renderFlags
	}{
		{name: "unknown id", flags: renderFlags{selected: 99}},
		{name: "filtered out", flags: renderFlags{filter: "nurse", selected: 1}},
		{name: "inline mode", flags: renderFlags{mode: "inline", selected: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := tt.flags.state(dashboard.ModePopup)
			require.NoError(t, err)

			var buf bytes.Buffer
			err = exportPage(context.Background(), dash, templates, state, &buf)
			require.ErrorIs(t, err, dashboard.ErrBadSelection)
			assert.Zero(t, buf.Len(), "nothing is written for a rejected state")
		})
	}
}

func TestWriteFile(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")

	t.Run("writes the page", func(t *testing.T) {
		path := filepath.Join(dir, "dashboard.html")
		err := writeFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, "<html></html>")
			return err
		})
		require.NoError(t, err)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(raw))
	})

	t.Run("write error is returned", func(t *testing.T) {
		boom := errors.New("render failed")
		err := writeFile(filepath.Join(dir, "broken.html"), func(io.Writer) error { return boom })
		require.ErrorIs(t, err, boom)
	})

	t.Run("missing directory", func(t *testing.T) {
		err := writeFile(filepath.Join(dir, "absent", "dashboard.html"), func(io.Writer) error { return nil })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create output file")
	})
}
