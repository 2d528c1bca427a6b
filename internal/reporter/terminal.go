package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/speechstyle/internal/analyzer"
	"github.com/pthm/speechstyle/internal/classifier"
	"github.com/pthm/speechstyle/internal/labels"
	"github.com/pthm/speechstyle/internal/ui"
)

const barWidth = 30

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w      io.Writer
	ui     *ui.UI
	labels *labels.Set
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI, set *labels.Set) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u, labels: set}
}

// Report outputs the diagnosis to the terminal
func (r *TerminalReporter) Report(doc *Document) error {
	_, err := io.WriteString(r.w, r.Render(doc))
	return err
}

// Render formats the diagnosis as terminal text
func (r *TerminalReporter) Render(doc *Document) string {
	var sb strings.Builder

	r.printHeader(&sb, doc)
	r.printClassification(&sb, doc.Result.Classification)
	r.printChart(&sb, doc.Result.Scores)
	r.printDetails(&sb, doc.Result.Measurements)
	r.printComments(&sb, doc)

	return sb.String()
}

func (r *TerminalReporter) printHeader(sb *strings.Builder, doc *Document) {
	s := r.ui.Styles
	if doc.Title != "" {
		fmt.Fprintln(sb, s.Title.Render(doc.Title))
	}
	if doc.Source != "" {
		fmt.Fprintln(sb, s.Path.Render("  "+doc.Source))
	}
}

func (r *TerminalReporter) section(sb *strings.Builder, e labels.Entry) {
	fmt.Fprintln(sb)
	fmt.Fprintln(sb, r.ui.Styles.Header.Render(e.Render(r.ui.ShowIcons())))
}

func (r *TerminalReporter) printClassification(sb *strings.Builder, c classifier.Classification) {
	s := r.ui.Styles
	r.section(sb, r.labels.Sections.Diagnosis)

	entries := r.labels.ClassificationEntries(c)
	for i, a := range classifier.Axes {
		fmt.Fprintf(sb, "  %s %s：%s\n",
			s.Bullet,
			s.Category.Render(r.labels.Category(a)),
			s.Label.Render(entries[i].Render(r.ui.ShowIcons())),
		)
	}
}

func (r *TerminalReporter) printChart(sb *strings.Builder, scores classifier.ChartScores) {
	s := r.ui.Styles
	r.section(sb, r.labels.Sections.Chart)

	axes := ComputeAxes(scores, r.labels)

	nameWidth := 0
	for _, a := range axes {
		nameWidth = max(nameWidth, lipgloss.Width(a.Name))
	}
	nameStyle := s.Axis.Width(nameWidth)

	for _, a := range axes {
		fmt.Fprintf(sb, "  %s  %s %s\n",
			nameStyle.Render(a.Name),
			r.bar(a.Value/classifier.MaxScore),
			s.Value.Render(fmt.Sprintf("%.1f", a.Value)),
		)
	}
}

// bar draws a horizontal gauge; pct is in [0, 1]
func (r *TerminalReporter) bar(pct float64) string {
	if r.ui.Styles.Enabled() {
		p := progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		)
		return p.ViewAs(pct)
	}
	return asciiBar(pct, barWidth)
}

func asciiBar(pct float64, width int) string {
	filled := int(pct*float64(width) + 0.5)
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func (r *TerminalReporter) printDetails(sb *strings.Builder, m *analyzer.Measurements) {
	s := r.ui.Styles
	d := r.labels.Details
	u := r.labels.Units
	icons := r.ui.ShowIcons()

	r.section(sb, r.labels.Sections.Details)

	fmt.Fprintf(sb, "  %s：%s\n", d.Speed.Render(icons),
		s.Value.Render(fmt.Sprintf("%d%s", m.CharsPerMinute(), u.CharsPerMinute)))

	fmt.Fprintf(sb, "  %s：%s（%.1f%%）\n", d.Nouns.Render(icons),
		s.Value.Render(fmt.Sprintf("%d%s／%d%s", m.NounCount, u.Nouns, m.TotalTrackedWords, u.Words)),
		m.NounPercent())

	fmt.Fprintf(sb, "  %s：%s（%.1f%%）\n", d.Kanji.Render(icons),
		s.Value.Render(fmt.Sprintf("%d%s／%d%s", m.KanjiCount, u.Kanji, m.Characters, u.Chars)),
		m.KanjiPercent())

	parts := make([]string, 0, len(m.FillerCounts))
	for _, fc := range m.FillerCounts {
		parts = append(parts, fmt.Sprintf("%s：%d%s", fc.Word, fc.Count, u.Times))
	}
	fmt.Fprintf(sb, "  %s：%s（%s：%d%s）\n", d.Filler.Render(icons),
		strings.Join(parts, u.Separator), u.Total, m.FillerTotal, u.Times)
}

func (r *TerminalReporter) printComments(sb *strings.Builder, doc *Document) {
	s := r.ui.Styles
	r.section(sb, r.labels.Sections.Feedback)

	for _, c := range doc.Result.Comments {
		fmt.Fprintf(sb, "  %s %s\n", s.Bullet, s.Comment.Render(r.labels.Comment(c).Render(r.ui.ShowIcons())))
	}
}
