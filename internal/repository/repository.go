package repository

import (
	"context"
	"time"

	"github.com/UnknownOlympus/asclepius/internal/metrics"
	"github.com/UnknownOlympus/asclepius/internal/models"
)

const (
	SourceFixture = "fixture"
	SourceFile    = "file"
)

// StaffRepoIface represents a read-only source of staff records.
// Implementations return records in a stable order and never share
// their backing slice with the caller.
type StaffRepoIface interface {
	ListStaff(ctx context.Context) ([]models.StaffRecord, error)
}

// observeLoad records how long a roster load took and the resulting headcount per role.
// A nil metrics value disables observation.
func observeLoad(m *metrics.Metrics, source string, start time.Time, records []models.StaffRecord) {
	if m == nil {
		return
	}

	m.RosterLoad.WithLabelValues(source).Observe(time.Since(start).Seconds())

	counts := make(map[models.Role]int, len(models.Roles))
	for _, rec := range records {
		counts[rec.Role]++
	}
	for _, role := range models.Roles {
		m.RosterRecords.WithLabelValues(string(role)).Set(float64(counts[role]))
	}
}
