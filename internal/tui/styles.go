package tui

import "github.com/charmbracelet/lipgloss"

var (
	DoctorColor  = lipgloss.Color("#3b82f6")
	NurseColor   = lipgloss.Color("#22c55e")
	OverallColor = lipgloss.Color("#a855f7")
	MutedColor   = lipgloss.Color("#6b7280")
	GridColor    = lipgloss.Color("#cbd5e1")
	InkColor     = lipgloss.Color("#1f2937")
)

// Styles holds every style the terminal view draws with.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Panel    lipgloss.Style
	Map      lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style
	Value    lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Help     lipgloss.Style

	Grid   lipgloss.Style
	Doctor lipgloss.Style
	Nurse  lipgloss.Style
	Focus  lipgloss.Style
	Label  lipgloss.Style
	Popup  lipgloss.Style
}

// DefaultStyles returns the light dashboard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(InkColor),
		Subtitle: lipgloss.NewStyle().Foreground(MutedColor),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(GridColor).
			Padding(0, 1),
		Map: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(GridColor),
		Heading:  lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(MutedColor),
		Value:    lipgloss.NewStyle().Bold(true),
		Active:   lipgloss.NewStyle().Bold(true).Reverse(true),
		Inactive: lipgloss.NewStyle().Foreground(MutedColor),
		Help:     lipgloss.NewStyle().Foreground(MutedColor).Italic(true),

		Grid:   lipgloss.NewStyle().Foreground(GridColor),
		Doctor: lipgloss.NewStyle().Bold(true).Foreground(DoctorColor),
		Nurse:  lipgloss.NewStyle().Bold(true).Foreground(NurseColor),
		Focus:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Label:  lipgloss.NewStyle().Foreground(InkColor),
		Popup:  lipgloss.NewStyle().Foreground(InkColor),
	}
}
