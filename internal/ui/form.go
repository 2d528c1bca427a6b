package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Duration slider bounds, in seconds
const (
	MinDurationSeconds     = 30
	MaxDurationSeconds     = 600
	DefaultDurationSeconds = 180
	DurationStep           = 10
)

// RenderFunc renders the results for a transcript. It is only called
// with non-empty text.
type RenderFunc func(text string, durationSeconds int) string

// FormConfig configures the interactive form
type FormConfig struct {
	Title           string
	Placeholder     string
	DurationLabel   string
	DurationSeconds int
	Render          RenderFunc
}

type formFocus int

const (
	focusText formFocus = iota
	focusDuration
)

// FormModel is the bubbletea model for the interactive diagnosis form
type FormModel struct {
	cfg      FormConfig
	input    textarea.Model
	slider   progress.Model
	results  viewport.Model
	duration int
	focus    formFocus
	ready    bool
	width    int
	height   int

	lastText     string
	lastDuration int
	stale        bool

	keys   formKeyMap
	styles formStyles
}

type formKeyMap struct {
	SwitchFocus key.Binding
	Shorter     key.Binding
	Longer      key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Quit        key.Binding
}

type formStyles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	focused lipgloss.Style
	dim     lipgloss.Style
	empty   lipgloss.Style
	helpBar lipgloss.Style
	divider lipgloss.Style
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("left", "h", "down", "j"),
			key.WithHelp("←/h", "shorter"),
		),
		Longer: key.NewBinding(
			key.WithKeys("right", "l", "up", "k"),
			key.WithHelp("→/l", "longer"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func defaultFormStyles() formStyles {
	return formStyles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Padding(0, 1),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		focused: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
		helpBar: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("235")),
		divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// NewFormModel creates the interactive form
func NewFormModel(cfg FormConfig) FormModel {
	ta := textarea.New()
	ta.Placeholder = cfg.Placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(8)
	ta.Focus()

	duration := ClampDuration(cfg.DurationSeconds)
	if cfg.DurationSeconds == 0 {
		duration = DefaultDurationSeconds
	}

	return FormModel{
		cfg:      cfg,
		input:    ta,
		stale:    true,
		slider:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		duration: duration,
		focus:    focusText,
		keys:     defaultFormKeyMap(),
		styles:   defaultFormStyles(),
	}
}

// ClampDuration snaps seconds into the slider range
func ClampDuration(seconds int) int {
	if seconds < MinDurationSeconds {
		return MinDurationSeconds
	}
	if seconds > MaxDurationSeconds {
		return MaxDurationSeconds
	}
	return seconds
}

// Duration returns the currently selected duration in seconds
func (m FormModel) Duration() int {
	return m.duration
}

// Text returns the current transcript text
func (m FormModel) Text() string {
	return m.input.Value()
}

// Init initializes the model
func (m FormModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchFocus):
			if m.focus == focusText {
				m.focus = focusDuration
				m.input.Blur()
			} else {
				m.focus = focusText
				cmds = append(cmds, m.input.Focus())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, m.keys.ScrollUp):
			m.results.HalfViewUp()
			return m, nil

		case key.Matches(msg, m.keys.ScrollDown):
			m.results.HalfViewDown()
			return m, nil
		}

		if m.focus == focusDuration {
			switch {
			case key.Matches(msg, m.keys.Shorter):
				m.duration = ClampDuration(m.duration - DurationStep)
			case key.Matches(msg, m.keys.Longer):
				m.duration = ClampDuration(m.duration + DurationStep)
			}
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 2)
		m.slider.Width = min(msg.Width-20, 50)

		resultsHeight := m.resultsHeight()
		if !m.ready {
			m.results = viewport.New(msg.Width, resultsHeight)
			m.ready = true
		} else {
			m.results.Width = msg.Width
			m.results.Height = resultsHeight
		}
		m.stale = true
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.refresh()

	return m, tea.Batch(cmds...)
}

// resultsHeight is whatever is left below the input area
func (m FormModel) resultsHeight() int {
	// header, textarea, slider, divider, help
	used := 1 + m.input.Height() + 2 + 1 + 1
	if h := m.height - used; h > 3 {
		return h
	}
	return 3
}

// refresh re-renders the results when the inputs changed
func (m *FormModel) refresh() {
	if !m.ready {
		return
	}

	text := m.input.Value()
	if !m.stale && text == m.lastText && m.duration == m.lastDuration {
		return
	}
	m.lastText = text
	m.lastDuration = m.duration
	m.stale = false

	if text == "" || m.cfg.Render == nil {
		m.results.SetContent(m.styles.empty.Render("  " + m.cfg.Placeholder))
		return
	}

	m.results.SetContent(m.cfg.Render(text, m.duration))
	m.results.GotoTop()
}

// View renders the form
func (m FormModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var sb strings.Builder

	sb.WriteString(m.styles.header.Render(m.cfg.Title))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderSlider())
	sb.WriteString("\n")
	sb.WriteString(m.styles.divider.Render(strings.Repeat("─", max(m.width, 1))))
	sb.WriteString("\n")
	sb.WriteString(m.results.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderHelp())

	return sb.String()
}

func (m FormModel) renderSlider() string {
	labelStyle := m.styles.label
	if m.focus == focusDuration {
		labelStyle = m.styles.focused
	}

	pct := float64(m.duration-MinDurationSeconds) / float64(MaxDurationSeconds-MinDurationSeconds)
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(m.cfg.DurationLabel),
		m.slider.ViewAs(pct),
		labelStyle.Render(fmt.Sprintf("%d秒", m.duration)),
	)
}

func (m FormModel) renderHelp() string {
	bindings := []key.Binding{m.keys.SwitchFocus, m.keys.ScrollUp, m.keys.ScrollDown, m.keys.Quit}
	if m.focus == focusDuration {
		bindings = append([]key.Binding{m.keys.Shorter, m.keys.Longer}, bindings...)
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return m.styles.helpBar.Render(" " + strings.Join(parts, " • ") + " ")
}
