package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/UnknownOlympus/asclepius/internal/metrics"
	"github.com/UnknownOlympus/asclepius/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRecord is returned when a roster file holds a record that cannot be plotted.
var ErrInvalidRecord = errors.New("invalid staff record")

const maxCoordinate = 100

type rosterFile struct {
	Staff []models.StaffRecord `yaml:"staff"`
}

// FileRepository reads the roster from a YAML file on every call, so edits show up
// on the next render without a restart.
type FileRepository struct {
	path    string
	metrics *metrics.Metrics
}

func NewFileRepository(path string, m *metrics.Metrics) *FileRepository {
	return &FileRepository{path: path, metrics: m}
}

// ListStaff parses and validates the roster file.
func (r *FileRepository) ListStaff(ctx context.Context) ([]models.StaffRecord, error) {
	startTime := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	// Unknown keys are errors, a misspelled counter must not read as zero.
	var roster rosterFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&roster); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode roster file '%s': %w", r.path, err)
	}

	if err = ValidateRoster(roster.Staff); err != nil {
		return nil, fmt.Errorf("roster file '%s': %w", r.path, err)
	}

	observeLoad(r.metrics, SourceFile, startTime, roster.Staff)

	return roster.Staff, nil
}

// ValidateRoster checks that every record has a positive unique ID, a known role,
// non-negative counters and coordinates within [0,100].
// Evolutions greater than appointments are accepted.
func ValidateRoster(records []models.StaffRecord) error {
	seen := make(map[int]struct{}, len(records))

	for idx, rec := range records {
		switch {
		case rec.ID <= 0:
			return fmt.Errorf("%w: entry %d has non-positive id %d", ErrInvalidRecord, idx, rec.ID)
		case !rec.Role.Valid():
			return fmt.Errorf("%w: id %d has unknown role %q", ErrInvalidRecord, rec.ID, rec.Role)
		case rec.Appointments < 0 || rec.Evolutions < 0:
			return fmt.Errorf("%w: id %d has negative counters", ErrInvalidRecord, rec.ID)
		case !inRange(rec.Position.X) || !inRange(rec.Position.Y):
			return fmt.Errorf("%w: id %d position (%g, %g) is outside the map",
				ErrInvalidRecord, rec.ID, rec.Position.X, rec.Position.Y)
		}

		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidRecord, rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}

	return nil
}

func inRange(v float64) bool {
	return v >= 0 && v <= maxCoordinate
}
