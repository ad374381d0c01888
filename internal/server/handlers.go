package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/asclepius/internal/lib/logger/sl"
	"github.com/UnknownOlympus/asclepius/internal/models"
	"github.com/UnknownOlympus/asclepius/internal/render"
	"github.com/UnknownOlympus/asclepius/internal/services/dashboard"
)

// Deps holds all handler dependencies.
type Deps struct {
	Log       *slog.Logger
	Dashboard *dashboard.Dashboard
	Templates *render.Templates
	// Defaults is the state a bare "/" request renders.
	Defaults dashboard.State
	AssetVer string
}

type staffDTO struct {
	models.StaffRecord

	Completion int `json:"completion"`
}

func toDTO(rec models.StaffRecord) staffDTO {
	return staffDTO{StaffRecord: rec, Completion: rec.Completion()}
}

// HandleDashboard renders the dashboard page for the state encoded in the query.
func (d *Deps) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	log := requestLogger(d.Log, r)

	base := d.Defaults
	if isMobileAgent(r.UserAgent()) {
		base.Layout = dashboard.LayoutMobile
	}

	state, errs := dashboard.StateFromQuery(r.URL.Query(), base)
	for _, err := range errs {
		log.DebugContext(r.Context(), "ignoring query value", sl.Err(err))
	}

	view, err := d.Dashboard.View(r.Context(), state, dashboard.SurfaceWeb)
	if err != nil {
		log.ErrorContext(r.Context(), "failed to build dashboard view", sl.Err(err))
		http.Error(w, "Failed to load staff", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = d.Templates.Page(w, render.PageData{View: view, AssetVer: d.AssetVer}); err != nil {
		log.ErrorContext(r.Context(), "failed to render dashboard", sl.Err(err))
	}
}

// HandleStylesheet serves the embedded CSS.
func (d *Deps) HandleStylesheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(render.Stylesheet())
}

// HandleStaffList returns the records passing ?role= in roster order.
func (d *Deps) HandleStaffList(w http.ResponseWriter, r *http.Request) {
	filter, err := dashboard.ParseFilter(r.URL.Query().Get("role"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := d.Dashboard.Staff(r.Context(), filter)
	if err != nil {
		requestLogger(d.Log, r).ErrorContext(r.Context(), "failed to list staff", sl.Err(err))
		jsonError(w, "Failed to load staff", http.StatusInternalServerError)
		return
	}

	staff := make([]staffDTO, 0, len(records))
	for _, rec := range records {
		staff = append(staff, toDTO(rec))
	}

	jsonOK(w, map[string]any{"filter": filter, "staff": staff})
}

// HandleStaffByID returns one record with its completion percentage.
func (d *Deps) HandleStaffByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		jsonError(w, "Invalid staff id", http.StatusBadRequest)
		return
	}

	rec, err := d.Dashboard.StaffByID(r.Context(), id)
	switch {
	case errors.Is(err, dashboard.ErrNotFound):
		jsonError(w, "Staff member not found", http.StatusNotFound)
		return
	case err != nil:
		requestLogger(d.Log, r).ErrorContext(r.Context(), "failed to load staff member", sl.Err(err))
		jsonError(w, "Failed to load staff", http.StatusInternalServerError)
		return
	}

	jsonOK(w, toDTO(rec))
}

// HandleStats returns the rollup over the whole roster.
func (d *Deps) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := d.Dashboard.Stats(r.Context())
	if err != nil {
		requestLogger(d.Log, r).ErrorContext(r.Context(), "failed to compute stats", sl.Err(err))
		jsonError(w, "Failed to load staff", http.StatusInternalServerError)
		return
	}

	jsonOK(w, stats)
}

// isMobileAgent applies the usual "Mobi" user agent token heuristic.
func isMobileAgent(ua string) bool {
	return strings.Contains(ua, "Mobi")
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
