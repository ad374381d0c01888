package models

import "math"

// Role is the professional category of a staff member.
type Role string

const (
	RoleDoctor Role = "doctor"
	RoleNurse  Role = "nurse"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleDoctor, RoleNurse} //nolint:gochecknoglobals // fixed enumeration

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleDoctor || r == RoleNurse
}

// Position holds percentage coordinates on the map surface, both in [0,100].
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// StaffRecord represents one healthcare professional plotted on the map.
type StaffRecord struct {
	ID           int      `json:"id"           yaml:"id"`
	Name         string   `json:"name"         yaml:"name"`
	Role         Role     `json:"role"         yaml:"role"`
	Appointments int      `json:"appointments" yaml:"appointments"`
	Evolutions   int      `json:"evolutions"   yaml:"evolutions"`
	Position     Position `json:"position"     yaml:"position"`
}

// Completion returns the rounded evolutions/appointments percentage of the record.
func (s StaffRecord) Completion() int {
	return CompletionPercent(s.Evolutions, s.Appointments)
}

// CompletionPercent returns round(100*done/assigned). A zero denominator yields 0.
func CompletionPercent(done, assigned int) int {
	if assigned == 0 {
		return 0
	}

	return int(math.Round(float64(done) / float64(assigned) * 100)) //nolint:mnd // percent
}

// BarWidth clamps a percentage to [0,100] for use as a progress bar width.
func BarWidth(percent int) int {
	return min(max(percent, 0), 100) //nolint:mnd // percent
}
