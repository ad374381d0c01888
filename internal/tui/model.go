package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/asclepius/internal/models"
	"github.com/UnknownOlympus/asclepius/internal/services/dashboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	panelWidth = 32
	popupWidth = 30
	barWidth   = 14

	minMapWidth  = 30
	minMapHeight = 12

	defaultWidth  = 110
	defaultHeight = 32
)

// Model is the bubbletea model of the terminal dashboard.
type Model struct {
	text    dashboard.PageText
	records []models.StaffRecord
	state   dashboard.State
	// focus is the id of the marker keyboard navigation is on; 0 when nothing is visible.
	focus int

	// OnTransition, when set, is called with every event applied to the state.
	OnTransition func(dashboard.Event)

	keys   keyMap
	styles Styles
	width  int
	height int
}

// NewModel builds the terminal dashboard over a loaded roster.
func NewModel(text dashboard.PageText, records []models.StaffRecord, mode dashboard.Mode) Model {
	m := Model{
		text:    text,
		records: records,
		state:   dashboard.NewState(mode),
		keys:    defaultKeyMap(),
		styles:  DefaultStyles(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.focus = m.firstVisible()

	return m
}

// State returns the current UI state.
func (m Model) State() dashboard.State { return m.state }

// Focus returns the id of the focused marker.
func (m Model) Focus() int { return m.focus }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.All):
			m = m.apply(dashboard.SetFilter(dashboard.FilterAll))
		case key.Matches(msg, m.keys.Doctors):
			m = m.apply(dashboard.SetFilter(dashboard.FilterDoctor))
		case key.Matches(msg, m.keys.Nurses):
			m = m.apply(dashboard.SetFilter(dashboard.FilterNurse))
		case key.Matches(msg, m.keys.Next):
			m.focus = m.step(1)
		case key.Matches(msg, m.keys.Prev):
			m.focus = m.step(-1)
		case key.Matches(msg, m.keys.Toggle):
			if m.focus != dashboard.NoSelection {
				m = m.apply(dashboard.Select(m.focus))
			}
		case key.Matches(msg, m.keys.Dismiss):
			m = m.apply(dashboard.Dismiss())
		case key.Matches(msg, m.keys.Mode):
			next := dashboard.ModeInline
			if m.state.Mode == dashboard.ModeInline {
				next = dashboard.ModePopup
			}
			m = m.apply(dashboard.SetMode(next))
		case key.Matches(msg, m.keys.Layout):
			next := dashboard.LayoutMobile
			if m.state.Layout == dashboard.LayoutMobile {
				next = dashboard.LayoutDesktop
			}
			m = m.apply(dashboard.SetLayout(next))
		}
	}

	return m, nil
}

func (m Model) apply(ev dashboard.Event) Model {
	m.state = m.state.Apply(ev, m.records)
	if m.OnTransition != nil {
		m.OnTransition(ev)
	}

	if !m.visible(m.focus) {
		m.focus = m.firstVisible()
	}

	return m
}

func (m Model) visibleIDs() []int {
	var out []int
	for _, rec := range dashboard.FilterRecords(m.records, m.state.Filter) {
		out = append(out, rec.ID)
	}
	return out
}

func (m Model) visible(id int) bool {
	for _, v := range m.visibleIDs() {
		if v == id {
			return true
		}
	}
	return false
}

func (m Model) firstVisible() int {
	if ids := m.visibleIDs(); len(ids) > 0 {
		return ids[0]
	}
	return dashboard.NoSelection
}

// step moves focus by delta through the visible markers, wrapping around.
func (m Model) step(delta int) int {
	ids := m.visibleIDs()
	if len(ids) == 0 {
		return dashboard.NoSelection
	}

	for i, id := range ids {
		if id == m.focus {
			return ids[((i+delta)%len(ids)+len(ids))%len(ids)]
		}
	}
	return ids[0]
}

func (m Model) View() string {
	view := dashboard.BuildView(m.text, m.state, m.records)

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(view.Title),
		m.styles.Subtitle.Render(view.Subtitle),
	)

	panel := m.styles.Panel.Width(panelWidth).Render(m.panelView(view))

	mapW, mapH := m.mapSize(view)
	mapBox := m.styles.Map.Render(m.mapView(view, mapW, mapH))

	var body string
	if view.Mobile() {
		body = lipgloss.JoinVertical(lipgloss.Left, mapBox, panel)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", mapBox)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, m.helpView())
}

func (m Model) mapSize(view dashboard.View) (int, int) {
	//nolint:mnd // borders, gaps, header and help lines
	w := m.width - 2
	if !view.Mobile() {
		w -= panelWidth + 5
	}
	h := m.height - 6

	return max(w, minMapWidth), max(h, minMapHeight)
}

func (m Model) panelView(view dashboard.View) string {
	var sb strings.Builder

	sb.WriteString(m.styles.Heading.Render("Staff Productivity"))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Muted.Render("Filter by role"))
	sb.WriteString("\n")
	opts := make([]string, 0, len(view.Filters))
	for _, f := range view.Filters {
		if f.Active {
			opts = append(opts, m.styles.Active.Render(" "+f.Label+" "))
		} else {
			opts = append(opts, m.styles.Inactive.Render(" "+f.Label+" "))
		}
	}
	sb.WriteString(strings.Join(opts, ""))
	sb.WriteString("\n\n")

	stats := view.Stats
	sb.WriteString(m.styles.Muted.Render("Staff"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %s   %s %s\n",
		m.styles.Doctor.Render("Doctors"), m.styles.Value.Render(fmt.Sprint(stats.Doctors)),
		m.styles.Nurse.Render("Nurses"), m.styles.Value.Render(fmt.Sprint(stats.Nurses)))
	sb.WriteString("\n")

	sb.WriteString(m.styles.Muted.Render("Total Productivity"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Appointments %s\n", m.styles.Value.Render(fmt.Sprint(stats.Appointments)))
	fmt.Fprintf(&sb, "Evolutions   %s\n", m.styles.Value.Render(fmt.Sprint(stats.Evolutions)))
	sb.WriteString(m.styles.Muted.Render("Average completion"))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(OverallColor).Render(progressBar(stats.BarWidth, barWidth)))
	fmt.Fprintf(&sb, " %d%%\n\n", stats.Completion)

	sb.WriteString(m.styles.Muted.Render("Details: "))
	sb.WriteString(string(view.State.Mode))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Muted.Render("Legend"))
	for _, l := range view.Legend {
		sb.WriteString("\n")
		sb.WriteString(m.glyphStyle(l.Role).Render(string(glyph(l.Role))))
		sb.WriteString(" " + l.Label)
	}

	return sb.String()
}

func (m Model) mapView(view dashboard.View, w, h int) string {
	c := newCanvas(w, h)

	for _, mk := range view.Markers {
		x, y := project(mk.Left, w), project(mk.Top, h)

		kind := cellDoctor
		if mk.Role == models.RoleNurse {
			kind = cellNurse
		}
		if mk.ID == m.focus {
			kind = cellFocus
		}

		r := glyph(mk.Role)
		if mk.Selected {
			r = '◉'
		}
		c.set(x, y, r, kind)

		if view.Inline() {
			c.text(x+2, y, fmt.Sprintf("%s %d/%d %d%%", mk.Name, mk.Evolutions, mk.Appointments, mk.Completion), cellLabel)
		}
	}

	if p := view.Popup; p != nil {
		lines := []string{
			" " + p.Name,
			" " + p.Label,
			fmt.Sprintf(" %d Assigned appointments", p.Appointments),
			fmt.Sprintf(" %d Evolutions", p.Evolutions),
			fmt.Sprintf(" %s %d%%", progressBar(p.BarWidth, barWidth), p.Completion),
		}
		boxH := len(lines) + 2 //nolint:mnd // borders
		left := min(max(project(p.Left, w)-popupWidth/2, 0), max(w-popupWidth, 0))
		top := min(project(p.Top, h), max(h-boxH, 0))
		c.box(left, top, popupWidth, lines)
	}

	return c.render(m.styles)
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}

func (m Model) glyphStyle(role models.Role) lipgloss.Style {
	if role == models.RoleNurse {
		return m.styles.Nurse
	}
	return m.styles.Doctor
}

func glyph(role models.Role) rune {
	if role == models.RoleNurse {
		return 'N'
	}
	return 'D'
}

// progressBar draws width cells of which percent are filled.
func progressBar(percent, width int) string {
	filled := percent * width / 100 //nolint:mnd // percent
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Run loads the roster and runs the terminal dashboard until the user quits or ctx is done.
func Run(ctx context.Context, dash *dashboard.Dashboard, mode dashboard.Mode, opts ...tea.ProgramOption) error {
	records, err := dash.Roster(ctx)
	if err != nil {
		return err
	}

	model := NewModel(dash.Text(), records, mode)
	model.OnTransition = dash.CountTransition

	if _, err = dash.View(ctx, model.State(), dashboard.SurfaceTUI); err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err = tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("terminal dashboard failed: %w", err)
	}

	return nil
}
