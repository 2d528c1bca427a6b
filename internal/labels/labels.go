package labels

import (
	"fmt"

	"github.com/pthm/speechstyle/internal/classifier"
	"github.com/pthm/speechstyle/internal/feedback"
)

// Entry is a display string with an optional decorative icon
type Entry struct {
	Icon string `yaml:"icon"`
	Text string `yaml:"text"`
}

// Render returns the text, prefixed by the icon when withIcon is set
func (e Entry) Render(withIcon bool) string {
	if !withIcon || e.Icon == "" {
		return e.Text
	}
	return e.Icon + " " + e.Text
}

// Sections are the headings of the report
type Sections struct {
	Diagnosis Entry `yaml:"diagnosis"`
	Chart     Entry `yaml:"chart"`
	Details   Entry `yaml:"details"`
	Feedback  Entry `yaml:"feedback"`
}

// Details are the titles of the numeric readouts
type Details struct {
	Speed  Entry `yaml:"speed"`
	Nouns  Entry `yaml:"nouns"`
	Kanji  Entry `yaml:"kanji"`
	Filler Entry `yaml:"filler"`
}

// Units are the words used in the numeric readouts
type Units struct {
	CharsPerMinute string `yaml:"chars_per_minute"`
	Nouns          string `yaml:"nouns"`
	Words          string `yaml:"words"`
	Kanji          string `yaml:"kanji"`
	Chars          string `yaml:"chars"`
	Times          string `yaml:"times"`
	Total          string `yaml:"total"`
	Separator      string `yaml:"separator"`
}

// Form holds the prompts of the interactive form
type Form struct {
	Input    Entry `yaml:"input"`
	Duration Entry `yaml:"duration"`
}

// Set maps the classifier's and feedback generator's abstract values to
// display strings
type Set struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`

	Sections   Sections          `yaml:"sections"`
	Categories map[string]string `yaml:"categories"`
	Axes       map[string]string `yaml:"axes"`
	Labels     map[string]Entry  `yaml:"labels"`
	Details    Details           `yaml:"details"`
	Comments   map[string]Entry  `yaml:"comments"`
	Units      Units             `yaml:"units"`
	Form       Form              `yaml:"form"`
}

// Category returns the heading for one classification category
func (s *Set) Category(a classifier.Axis) string {
	return s.Categories[a.String()]
}

// Axis returns the radar chart name for one axis
func (s *Set) Axis(a classifier.Axis) string {
	return s.Axes[a.String()]
}

// AxisNames returns the chart axis names in display order
func (s *Set) AxisNames() []string {
	names := make([]string, 0, len(classifier.Axes))
	for _, a := range classifier.Axes {
		names = append(names, s.Axis(a))
	}
	return names
}

// Label returns the display entry for a classification label
func (s *Set) Label(label fmt.Stringer) Entry {
	return s.Labels[label.String()]
}

// ClassificationEntries returns the display entries for a classification in axis order
func (s *Set) ClassificationEntries(c classifier.Classification) []Entry {
	return []Entry{
		s.Label(c.Speed),
		s.Label(c.Info),
		s.Label(c.Clarity),
		s.Label(c.Filler),
	}
}

// Comment returns the display entry for a feedback comment
func (s *Set) Comment(c feedback.Comment) Entry {
	return s.Comments[c.Kind.String()]
}

// validate checks that every value the pipeline can produce has a display string
func (s *Set) validate() error {
	for _, a := range classifier.Axes {
		if s.Category(a) == "" {
			return fmt.Errorf("label set %s: missing category %q", s.Name, a)
		}
		if s.Axis(a) == "" {
			return fmt.Errorf("label set %s: missing axis %q", s.Name, a)
		}
	}

	labels := []fmt.Stringer{
		classifier.Calm, classifier.Fast,
		classifier.Loose, classifier.Dense,
		classifier.Plain, classifier.Technical,
		classifier.Smooth, classifier.FillerHeavy,
	}
	for _, l := range labels {
		if s.Label(l).Text == "" {
			return fmt.Errorf("label set %s: missing label %q", s.Name, l)
		}
	}

	kinds := []feedback.CommentKind{
		feedback.Balanced,
		feedback.SpeedCaution,
		feedback.DensityPraise,
		feedback.TechnicalCaution,
		feedback.FillerCaution,
	}
	for _, k := range kinds {
		if s.Comments[k.String()].Text == "" {
			return fmt.Errorf("label set %s: missing comment %q", s.Name, k)
		}
	}

	return nil
}
