package dashboard

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/asclepius/internal/models"
)

var (
	ErrUnknownFilter = errors.New("unknown filter")
	ErrUnknownMode   = errors.New("unknown interaction mode")
	ErrUnknownLayout = errors.New("unknown layout")
	ErrBadSelection  = errors.New("bad selection")
)

// Filter restricts which markers are plotted.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterDoctor Filter = "doctor"
	FilterNurse  Filter = "nurse"
)

// Filters lists the filter controls in display order.
var Filters = []Filter{FilterAll, FilterDoctor, FilterNurse} //nolint:gochecknoglobals // fixed enumeration

// ParseFilter maps a raw value to a Filter. The empty string means FilterAll.
func ParseFilter(raw string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterDoctor, FilterNurse:
		return f, nil
	default:
		return FilterAll, fmt.Errorf("%w: %q", ErrUnknownFilter, raw)
	}
}

// Matches reports whether a record with the given role passes the filter.
func (f Filter) Matches(role models.Role) bool {
	return f == FilterAll || string(f) == string(role)
}

// Mode selects how record details are shown.
type Mode string

const (
	// ModePopup shows details in an overlay for the one selected marker.
	ModePopup Mode = "popup"
	// ModeInline always shows every marker's counters beneath its icon.
	ModeInline Mode = "inline"
)

func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(raw))); m {
	case ModePopup, ModeInline:
		return m, nil
	default:
		return ModePopup, fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// Layout orders the side panel and the map: desktop puts the panel first, mobile the map.
type Layout string

const (
	LayoutDesktop Layout = "desktop"
	LayoutMobile  Layout = "mobile"
)

func ParseLayout(raw string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(raw))); l {
	case "":
		return LayoutDesktop, nil
	case LayoutDesktop, LayoutMobile:
		return l, nil
	default:
		return LayoutDesktop, fmt.Errorf("%w: %q", ErrUnknownLayout, raw)
	}
}

// NoSelection is the Selected value when no marker is open.
const NoSelection = 0

// State is the whole of the dashboard's UI state.
type State struct {
	Filter   Filter
	Selected int
	Mode     Mode
	Layout   Layout
}

// NewState returns the initial state for the given interaction mode.
func NewState(mode Mode) State {
	return State{Filter: FilterAll, Selected: NoSelection, Mode: mode, Layout: LayoutDesktop}
}

// HasSelection reports whether a marker is open.
func (s State) HasSelection() bool {
	return s.Selected != NoSelection
}

// EventKind names a UI input.
type EventKind string

const (
	EventSetFilter EventKind = "set_filter"
	EventSelect    EventKind = "select"
	EventDismiss   EventKind = "dismiss"
	EventSetMode   EventKind = "set_mode"
	EventSetLayout EventKind = "set_layout"
)

// Event is one UI input fed to State.Apply.
type Event struct {
	Kind   EventKind
	Filter Filter
	ID     int
	Mode   Mode
	Layout Layout
}

func SetFilter(f Filter) Event { return Event{Kind: EventSetFilter, Filter: f} }
func Select(id int) Event      { return Event{Kind: EventSelect, ID: id} }
func Dismiss() Event           { return Event{Kind: EventDismiss} }
func SetMode(m Mode) Event     { return Event{Kind: EventSetMode, Mode: m} }
func SetLayout(l Layout) Event { return Event{Kind: EventSetLayout, Layout: l} }

// Apply returns the state that follows ev. It never mutates s.
//
// Selecting the already selected marker closes it. A selection hidden by a new
// filter, or left over when switching to inline mode, is cleared. Selecting an
// unknown or filtered-out id is ignored.
func (s State) Apply(ev Event, records []models.StaffRecord) State {
	next := s

	switch ev.Kind {
	case EventSetFilter:
		next.Filter = ev.Filter
		if next.HasSelection() && !next.visible(next.Selected, records) {
			next.Selected = NoSelection
		}
	case EventSelect:
		switch {
		case next.Mode != ModePopup:
		case ev.ID == next.Selected:
			next.Selected = NoSelection
		case next.visible(ev.ID, records):
			next.Selected = ev.ID
		}
	case EventDismiss:
		next.Selected = NoSelection
	case EventSetMode:
		next.Mode = ev.Mode
		if next.Mode != ModePopup {
			next.Selected = NoSelection
		}
	case EventSetLayout:
		next.Layout = ev.Layout
	}

	return next
}

// Normalize drops a selection that cannot be shown under the current filter and mode.
// It is applied to states decoded from outside, such as a URL query.
func (s State) Normalize(records []models.StaffRecord) State {
	if s.HasSelection() && (s.Mode != ModePopup || !s.visible(s.Selected, records)) {
		s.Selected = NoSelection
	}
	return s
}

func (s State) visible(id int, records []models.StaffRecord) bool {
	for _, rec := range records {
		if rec.ID == id {
			return s.Filter.Matches(rec.Role)
		}
	}
	return false
}

// Query encodes the state as URL query values. The all filter, an empty selection and the
// desktop layout are omitted. Mode is always written, since the default mode is configurable.
func (s State) Query() url.Values {
	values := url.Values{}
	if s.Filter != FilterAll && s.Filter != "" {
		values.Set("filter", string(s.Filter))
	}
	if s.HasSelection() {
		values.Set("selected", strconv.Itoa(s.Selected))
	}
	if s.Mode != "" {
		values.Set("mode", string(s.Mode))
	}
	if s.Layout == LayoutMobile {
		values.Set("layout", string(s.Layout))
	}
	return values
}

// Href returns a relative link that reproduces the state.
func (s State) Href() string {
	return "?" + s.Query().Encode()
}

// StateFromQuery decodes a state from URL query values on top of base. Invalid values keep
// the base value and are reported in the returned errors; they never abort decoding.
func StateFromQuery(values url.Values, base State) (State, []error) {
	var errs []error
	state := base

	if raw := values.Get("filter"); raw != "" {
		f, err := ParseFilter(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			state.Filter = f
		}
	}

	if raw := values.Get("mode"); raw != "" {
		m, err := ParseMode(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			state.Mode = m
		}
	}

	if raw := values.Get("layout"); raw != "" {
		l, err := ParseLayout(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			state.Layout = l
		}
	}

	if raw := values.Get("selected"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			errs = append(errs, fmt.Errorf("%w: %q", ErrBadSelection, raw))
		} else {
			state.Selected = id
		}
	}

	return state, errs
}
