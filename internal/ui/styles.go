package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style

	// Structural styles
	Title     lipgloss.Style
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	Separator lipgloss.Style

	// Result styles
	Category lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Axis     lipgloss.Style
	Comment  lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError   string
	IconWarning string
	IconInfo    string
	IconSuccess string
	Bullet      string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))    // Blue
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green

		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))  // Deep sky blue
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))               // Gray
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray

		s.Category = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
		s.Label = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // Cyan
		s.Value = lipgloss.NewStyle().Bold(true)
		s.Axis = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
		s.Comment = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

		s.IconError = "\u2717"   // ✗
		s.IconWarning = "\u26a0" // ⚠
		s.IconInfo = "\u2139"    // ℹ
		s.IconSuccess = "\u2713" // ✓
		s.Bullet = "\u2022"      // •
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Error = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Info = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.Title = lipgloss.NewStyle()
		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.Category = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Value = lipgloss.NewStyle()
		s.Axis = lipgloss.NewStyle()
		s.Comment = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
		s.Bullet = "-"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
