package repository

import (
	"context"
	"time"

	"github.com/UnknownOlympus/asclepius/internal/metrics"
	"github.com/UnknownOlympus/asclepius/internal/models"
)

// sampleStaff is the built-in illustrative roster.
//
//nolint:gochecknoglobals,mnd // read-only fixture, copied on every read
var sampleStaff = []models.StaffRecord{
	{ID: 1, Name: "Dr. García", Role: models.RoleDoctor, Appointments: 15, Evolutions: 12, Position: models.Position{X: 20, Y: 30}},
	{ID: 2, Name: "Dr. Martínez", Role: models.RoleDoctor, Appointments: 18, Evolutions: 14, Position: models.Position{X: 40, Y: 20}},
	{ID: 3, Name: "Dr. Rodríguez", Role: models.RoleDoctor, Appointments: 12, Evolutions: 8, Position: models.Position{X: 65, Y: 40}},
	{ID: 4, Name: "Enf. López", Role: models.RoleNurse, Appointments: 22, Evolutions: 18, Position: models.Position{X: 25, Y: 50}},
	{ID: 5, Name: "Enf. Sánchez", Role: models.RoleNurse, Appointments: 20, Evolutions: 15, Position: models.Position{X: 50, Y: 60}},
	{ID: 6, Name: "Enf. Gutiérrez", Role: models.RoleNurse, Appointments: 18, Evolutions: 12, Position: models.Position{X: 70, Y: 25}},
	{ID: 7, Name: "Dr. Hernández", Role: models.RoleDoctor, Appointments: 14, Evolutions: 10, Position: models.Position{X: 35, Y: 70}},
	{ID: 8, Name: "Enf. Díaz", Role: models.RoleNurse, Appointments: 25, Evolutions: 20, Position: models.Position{X: 60, Y: 75}},
}

// FixtureRepository serves the built-in sample roster.
type FixtureRepository struct {
	metrics *metrics.Metrics
}

func NewFixtureRepository(m *metrics.Metrics) *FixtureRepository {
	return &FixtureRepository{metrics: m}
}

// ListStaff returns a copy of the sample roster.
func (r *FixtureRepository) ListStaff(_ context.Context) ([]models.StaffRecord, error) {
	startTime := time.Now()

	records := make([]models.StaffRecord, len(sampleStaff))
	copy(records, sampleStaff)

	observeLoad(r.metrics, SourceFixture, startTime, records)

	return records, nil
}
