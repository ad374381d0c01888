package dashboard_test

import (
	"net/url"
	"testing"

	"github.com/UnknownOlympus/asclepius/internal/services/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]dashboard.Filter{
		"":        dashboard.FilterAll,
		"all":     dashboard.FilterAll,
		"Doctor":  dashboard.FilterDoctor,
		" nurse ": dashboard.FilterNurse,
	} {
		got, err := dashboard.ParseFilter(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	got, err := dashboard.ParseFilter("surgeon")
	require.ErrorIs(t, err, dashboard.ErrUnknownFilter)
	assert.Equal(t, dashboard.FilterAll, got)
}

func TestParseModeAndLayout(t *testing.T) {
	t.Parallel()

	m, err := dashboard.ParseMode("INLINE")
	require.NoError(t, err)
	assert.Equal(t, dashboard.ModeInline, m)

	_, err = dashboard.ParseMode("")
	require.ErrorIs(t, err, dashboard.ErrUnknownMode)

	l, err := dashboard.ParseLayout("mobile")
	require.NoError(t, err)
	assert.Equal(t, dashboard.LayoutMobile, l)

	l, err = dashboard.ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, dashboard.LayoutDesktop, l)

	_, err = dashboard.ParseLayout("tablet")
	require.ErrorIs(t, err, dashboard.ErrUnknownLayout)
}

func TestNewState(t *testing.T) {
	t.Parallel()

	s := dashboard.NewState(dashboard.ModePopup)

	assert.Equal(t, dashboard.FilterAll, s.Filter)
	assert.False(t, s.HasSelection())
	assert.Equal(t, dashboard.LayoutDesktop, s.Layout)
}

func TestState_Apply(t *testing.T) {
	t.Parallel()

	records := fixture(t)
	initial := dashboard.NewState(dashboard.ModePopup)

	t.Run("select opens one marker", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.Select(3), records)
		assert.Equal(t, 3, s.Selected)
	})

	t.Run("selecting another replaces the selection", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.Select(3), records).Apply(dashboard.Select(5), records)
		assert.Equal(t, 5, s.Selected)
	})

	t.Run("re-selecting toggles off", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.Select(3), records).Apply(dashboard.Select(3), records)
		assert.False(t, s.HasSelection())
	})

	t.Run("dismiss clears", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.Select(2), records).Apply(dashboard.Dismiss(), records)
		assert.False(t, s.HasSelection())
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.Select(2), records).Apply(dashboard.Select(42), records)
		assert.Equal(t, 2, s.Selected)
	})

	t.Run("hidden id is ignored", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.SetFilter(dashboard.FilterNurse), records).Apply(dashboard.Select(1), records)
		assert.False(t, s.HasSelection())
	})

	t.Run("filter keeps a visible selection", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.Select(1), records).Apply(dashboard.SetFilter(dashboard.FilterDoctor), records)
		assert.Equal(t, dashboard.FilterDoctor, s.Filter)
		assert.Equal(t, 1, s.Selected)
	})

	t.Run("filter drops a hidden selection", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.Select(1), records).Apply(dashboard.SetFilter(dashboard.FilterNurse), records)
		assert.Equal(t, dashboard.FilterNurse, s.Filter)
		assert.False(t, s.HasSelection())
	})

	t.Run("inline mode has no selection", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.Select(4), records).Apply(dashboard.SetMode(dashboard.ModeInline), records)
		assert.False(t, s.HasSelection())

		s = s.Apply(dashboard.Select(4), records)
		assert.False(t, s.HasSelection())
	})

	t.Run("layout keeps the selection", func(t *testing.T) {
		t.Parallel()
		s := initial.Apply(dashboard.Select(4), records).Apply(dashboard.SetLayout(dashboard.LayoutMobile), records)
		assert.Equal(t, dashboard.LayoutMobile, s.Layout)
		assert.Equal(t, 4, s.Selected)

		s = s.Apply(dashboard.SetLayout(dashboard.LayoutDesktop), records)
		assert.Equal(t, dashboard.LayoutDesktop, s.Layout)
	})

	t.Run("apply does not mutate the receiver", func(t *testing.T) {
		t.Parallel()
		before := initial
		_ = initial.Apply(dashboard.Select(4), records)
		assert.Equal(t, before, initial)
	})
}

func TestState_Normalize(t *testing.T) {
	t.Parallel()

	records := fixture(t)

	s := dashboard.State{Filter: dashboard.FilterDoctor, Selected: 4, Mode: dashboard.ModePopup}
	assert.False(t, s.Normalize(records).HasSelection())

	s = dashboard.State{Filter: dashboard.FilterAll, Selected: 4, Mode: dashboard.ModeInline}
	assert.False(t, s.Normalize(records).HasSelection())

	s = dashboard.State{Filter: dashboard.FilterAll, Selected: 4, Mode: dashboard.ModePopup}
	assert.Equal(t, 4, s.Normalize(records).Selected)
}

func TestState_QueryRoundTrip(t *testing.T) {
	t.Parallel()

	s := dashboard.State{
		Filter:   dashboard.FilterNurse,
		Selected: 6,
		Mode:     dashboard.ModePopup,
		Layout:   dashboard.LayoutMobile,
	}

	values, err := url.ParseQuery(s.Href()[1:])
	require.NoError(t, err)

	decoded, errs := dashboard.StateFromQuery(values, dashboard.NewState(dashboard.ModeInline))
	assert.Empty(t, errs)
	assert.Equal(t, s, decoded)
}

func TestState_HrefAlwaysCarriesMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "?mode=popup", dashboard.NewState(dashboard.ModePopup).Href())
	assert.Equal(t, "?mode=inline", dashboard.NewState(dashboard.ModeInline).Href())

	s := dashboard.NewState(dashboard.ModePopup)
	s.Filter = dashboard.FilterNurse
	s.Layout = dashboard.LayoutMobile
	assert.Equal(t, "?filter=nurse&layout=mobile&mode=popup", s.Href())
}

func TestStateFromQuery_InvalidValuesFallBack(t *testing.T) {
	t.Parallel()

	base := dashboard.NewState(dashboard.ModePopup)
	values := url.Values{
		"filter":   {"surgeon"},
		"mode":     {"carousel"},
		"layout":   {"watch"},
		"selected": {"abc"},
	}

	state, errs := dashboard.StateFromQuery(values, base)

	assert.Equal(t, base, state)
	require.Len(t, errs, 4)
	assert.ErrorIs(t, errs[0], dashboard.ErrUnknownFilter)
	assert.ErrorIs(t, errs[1], dashboard.ErrUnknownMode)
	assert.ErrorIs(t, errs[2], dashboard.ErrUnknownLayout)
	assert.ErrorIs(t, errs[3], dashboard.ErrBadSelection)
}
