package dashboard_test

import (
	"context"
	"testing"

	"github.com/UnknownOlympus/asclepius/internal/models"
	"github.com/UnknownOlympus/asclepius/internal/repository"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) []models.StaffRecord {
	t.Helper()

	records, err := repository.NewFixtureRepository(nil).ListStaff(context.Background())
	require.NoError(t, err)

	return records
}

func ids(records []models.StaffRecord) []int {
	out := make([]int, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.ID)
	}
	return out
}
