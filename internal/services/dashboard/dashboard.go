package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/asclepius/internal/metrics"
	"github.com/UnknownOlympus/asclepius/internal/models"
	"github.com/UnknownOlympus/asclepius/internal/repository"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("staff record not found")

const (
	SurfaceWeb    = "web"
	SurfaceTUI    = "tui"
	SurfaceExport = "export"
)

// Dashboard builds views and rollups from a staff repository.
type Dashboard struct {
	log     *slog.Logger
	repo    repository.StaffRepoIface
	metrics *metrics.Metrics
	text    PageText
}

func NewDashboard(log *slog.Logger, repo repository.StaffRepoIface, m *metrics.Metrics, text PageText) *Dashboard {
	return &Dashboard{log: log, repo: repo, metrics: m, text: text}
}

func (d *Dashboard) initLogger(opn string) *slog.Logger {
	return d.log.With(
		slog.String("op", opn),
		slog.String("division", "dashboard"),
	)
}

// Text returns the page shell header.
func (d *Dashboard) Text() PageText {
	return d.text
}

// Roster returns the full, unfiltered roster.
func (d *Dashboard) Roster(ctx context.Context) ([]models.StaffRecord, error) {
	records, err := d.repo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	return records, nil
}

// View builds the view for state and counts it against surface.
func (d *Dashboard) View(ctx context.Context, state State, surface string) (View, error) {
	const opn = "Dashboard.View"
	log := d.initLogger(opn)

	records, err := d.Roster(ctx)
	if err != nil {
		return View{}, err
	}

	view := BuildView(d.text, state, records)
	if view.State.Selected != state.Selected {
		log.DebugContext(ctx, "selection dropped, record is hidden or unknown",
			"selected", state.Selected, "filter", state.Filter, "mode", state.Mode)
	}

	if d.metrics != nil {
		d.metrics.Renders.WithLabelValues(surface, string(view.State.Mode)).Inc()
	}
	log.DebugContext(ctx, "view built", "surface", surface, "markers", len(view.Markers), "popup", view.Popup != nil)

	return view, nil
}

// Apply advances state by ev against the current roster.
func (d *Dashboard) Apply(ctx context.Context, state State, ev Event) (State, error) {
	records, err := d.Roster(ctx)
	if err != nil {
		return state, err
	}

	d.CountTransition(ev)

	return state.Apply(ev, records), nil
}

// CountTransition records ev for surfaces that reduce state themselves.
func (d *Dashboard) CountTransition(ev Event) {
	if d.metrics != nil {
		d.metrics.StateTransitions.WithLabelValues(string(ev.Kind)).Inc()
	}
}

// Staff returns the records passing f in roster order.
func (d *Dashboard) Staff(ctx context.Context, f Filter) ([]models.StaffRecord, error) {
	records, err := d.Roster(ctx)
	if err != nil {
		return nil, err
	}

	return FilterRecords(records, f), nil
}

// StaffByID returns a single record.
func (d *Dashboard) StaffByID(ctx context.Context, id int) (models.StaffRecord, error) {
	records, err := d.Roster(ctx)
	if err != nil {
		return models.StaffRecord{}, err
	}

	rec, ok := FindByID(records, id)
	if !ok {
		return models.StaffRecord{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	return rec, nil
}

// Stats returns the rollup over the full roster.
func (d *Dashboard) Stats(ctx context.Context) (Stats, error) {
	records, err := d.Roster(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Aggregate(records), nil
}
