package dashboard

import "github.com/UnknownOlympus/asclepius/internal/models"

// Stats is the side panel rollup. It is always computed over the whole roster.
type Stats struct {
	Doctors      int `json:"doctors"`
	Nurses       int `json:"nurses"`
	Appointments int `json:"appointments"`
	Evolutions   int `json:"evolutions"`
	Completion   int `json:"completion"`
	BarWidth     int `json:"-"`
}

// Aggregate sums headcount per role and the two counters, and derives the overall completion.
func Aggregate(records []models.StaffRecord) Stats {
	var stats Stats

	for _, rec := range records {
		switch rec.Role {
		case models.RoleDoctor:
			stats.Doctors++
		case models.RoleNurse:
			stats.Nurses++
		}
		stats.Appointments += rec.Appointments
		stats.Evolutions += rec.Evolutions
	}

	stats.Completion = models.CompletionPercent(stats.Evolutions, stats.Appointments)
	stats.BarWidth = models.BarWidth(stats.Completion)

	return stats
}

// FilterRecords returns the records that pass f, keeping their relative order.
func FilterRecords(records []models.StaffRecord, f Filter) []models.StaffRecord {
	filtered := make([]models.StaffRecord, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec.Role) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// FindByID returns the record with the given id.
func FindByID(records []models.StaffRecord, id int) (models.StaffRecord, bool) {
	for _, rec := range records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.StaffRecord{}, false
}
