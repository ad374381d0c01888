package dashboard

import "github.com/UnknownOlympus/asclepius/internal/models"

// popupOffset is how far below its marker, in map percent, the popup is anchored.
const popupOffset = 5

// RoleStyle is the label, accent color and icon of a role.
type RoleStyle struct {
	Role  models.Role
	Label string
	Color string
	Icon  string
}

// StyleFor returns the presentation of a role. Unknown roles get a neutral style.
func StyleFor(role models.Role) RoleStyle {
	switch role {
	case models.RoleDoctor:
		return RoleStyle{Role: role, Label: "Doctor", Color: "#3b82f6", Icon: "user"}
	case models.RoleNurse:
		return RoleStyle{Role: role, Label: "Nurse", Color: "#22c55e", Icon: "users"}
	default:
		return RoleStyle{Role: role, Label: string(role), Color: "#6b7280", Icon: "user"}
	}
}

// PageText is the static page shell header.
type PageText struct {
	Title    string
	Subtitle string
}

// FilterOption is one of the side panel filter buttons.
type FilterOption struct {
	Filter Filter
	Label  string
	Color  string
	Active bool
	Href   string
}

// ModeOption is one of the interaction mode switches.
type ModeOption struct {
	Mode   Mode
	Label  string
	Active bool
	Href   string
}

// Marker is one plotted record.
type Marker struct {
	RoleStyle

	ID           int
	Name         string
	Appointments int
	Evolutions   int
	Completion   int
	BarWidth     int
	Left         float64
	Top          float64
	Selected     bool
	Href         string
}

// Popup is the detail overlay for the selected marker.
type Popup struct {
	Marker

	CloseHref string
}

// View is everything a surface needs to draw the dashboard for one state.
type View struct {
	PageText

	State   State
	Filters []FilterOption
	Modes   []ModeOption
	Markers []Marker
	Popup   *Popup
	Stats   Stats
	Legend  []RoleStyle
}

// Inline reports whether markers carry their counters inline.
func (v View) Inline() bool { return v.State.Mode == ModeInline }

// Mobile reports whether the map is drawn before the side panel.
func (v View) Mobile() bool { return v.State.Layout == LayoutMobile }

// BuildView derives the full view for state from the unfiltered roster.
// The state is normalized first, so a stale selection never yields a popup.
func BuildView(text PageText, state State, records []models.StaffRecord) View {
	state = state.Normalize(records)

	view := View{
		PageText: text,
		State:    state,
		Stats:    Aggregate(records),
		Legend:   []RoleStyle{StyleFor(models.RoleDoctor), StyleFor(models.RoleNurse)},
	}

	for _, f := range Filters {
		opt := FilterOption{
			Filter: f,
			Active: state.Filter == f,
			Href:   state.Apply(SetFilter(f), records).Href(),
		}
		if f == FilterAll {
			opt.Label, opt.Color = "All", "#1f2937"
		} else {
			style := StyleFor(models.Role(f))
			opt.Label, opt.Color = style.Label+"s", style.Color
		}
		view.Filters = append(view.Filters, opt)
	}

	for _, m := range []Mode{ModePopup, ModeInline} {
		label := "Popup"
		if m == ModeInline {
			label = "Inline"
		}
		view.Modes = append(view.Modes, ModeOption{
			Mode:   m,
			Label:  label,
			Active: state.Mode == m,
			Href:   state.Apply(SetMode(m), records).Href(),
		})
	}

	for _, rec := range FilterRecords(records, state.Filter) {
		marker := newMarker(rec)
		marker.Selected = state.Selected == rec.ID
		marker.Href = state.Apply(Select(rec.ID), records).Href()
		view.Markers = append(view.Markers, marker)

		if marker.Selected {
			popup := &Popup{Marker: marker, CloseHref: state.Apply(Dismiss(), records).Href()}
			popup.Top = rec.Position.Y + popupOffset
			view.Popup = popup
		}
	}

	return view
}

func newMarker(rec models.StaffRecord) Marker {
	completion := rec.Completion()

	return Marker{
		RoleStyle:    StyleFor(rec.Role),
		ID:           rec.ID,
		Name:         rec.Name,
		Appointments: rec.Appointments,
		Evolutions:   rec.Evolutions,
		Completion:   completion,
		BarWidth:     models.BarWidth(completion),
		Left:         rec.Position.X,
		Top:          rec.Position.Y,
	}
}
