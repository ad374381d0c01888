package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/asclepius/internal/lib/logger/sl"
	"github.com/UnknownOlympus/asclepius/internal/models"
	"github.com/UnknownOlympus/asclepius/internal/render"
)

// RosterLister is the part of the staff repository the health check needs.
type RosterLister interface {
	ListStaff(ctx context.Context) ([]models.StaffRecord, error)
}

type HealthChecker struct {
	roster    RosterLister
	templates *render.Templates
	log       *slog.Logger
}

func NewHealthChecker(roster RosterLister, templates *render.Templates, log *slog.Logger) *HealthChecker {
	return &HealthChecker{
		roster:    roster,
		templates: templates,
		log:       log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	if _, err := h.roster.ListStaff(req.Context()); err != nil {
		status["roster"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: roster load", sl.Err(err))
	} else {
		status["roster"] = "ok"
	}

	if h.templates == nil {
		status["templates"] = "missing"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: templates are not loaded")
	} else {
		status["templates"] = "ok"
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err := json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", sl.Err(err))
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
