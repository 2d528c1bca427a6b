package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/speechstyle/internal/analyzer"
	"github.com/pthm/speechstyle/internal/classifier"
	"github.com/pthm/speechstyle/internal/labels"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w      io.Writer
	labels *labels.Set
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer, set *labels.Set) *JSONReporter {
	return &JSONReporter{w: w, labels: set}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Title          string                 `json:"title,omitempty"`
	Source         string                 `json:"source,omitempty"`
	Measurements   *analyzer.Measurements `json:"measurements"`
	Readouts       JSONReadouts           `json:"readouts"`
	Classification map[string]JSONLabel   `json:"classification"`
	Chart          JSONChart              `json:"chart"`
	Comments       []JSONComment          `json:"comments"`
}

// JSONReadouts are the rounded values shown to users
type JSONReadouts struct {
	CharsPerMinute int     `json:"chars_per_minute"`
	NounPercent    float64 `json:"noun_percent"`
	KanjiPercent   float64 `json:"kanji_percent"`
}

// JSONLabel is a classification label in JSON format
type JSONLabel struct {
	Category string `json:"category"`
	ID       string `json:"id"`
	Text     string `json:"text"`
}

// JSONChart is the radar chart data; Loop repeats the first value to close the polygon
type JSONChart struct {
	Min  float64    `json:"min"`
	Max  float64    `json:"max"`
	Axes []JSONAxis `json:"axes"`
	Loop []float64  `json:"loop"`
}

// JSONAxis is one radar axis
type JSONAxis struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// JSONComment is a feedback comment in JSON format
type JSONComment struct {
	Rule string `json:"rule"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Report outputs the diagnosis as JSON
func (r *JSONReporter) Report(doc *Document) error {
	res := doc.Result
	m := res.Measurements
	c := res.Classification

	output := JSONOutput{
		Title:        doc.Title,
		Source:       doc.Source,
		Measurements: m,
		Readouts: JSONReadouts{
			CharsPerMinute: m.CharsPerMinute(),
			NounPercent:    m.NounPercent(),
			KanjiPercent:   m.KanjiPercent(),
		},
		Classification: map[string]JSONLabel{
			"speed":   r.label("speed", c.Speed),
			"info":    r.label("info", c.Info),
			"clarity": r.label("clarity", c.Clarity),
			"filler":  r.label("filler", c.Filler),
		},
		Chart: JSONChart{
			Min:  0,
			Max:  classifier.MaxScore,
			Axes: make([]JSONAxis, 0, len(classifier.Axes)),
			Loop: res.Scores.Loop(),
		},
		Comments: make([]JSONComment, 0, len(res.Comments)),
	}

	for _, a := range ComputeAxes(res.Scores, r.labels) {
		output.Chart.Axes = append(output.Chart.Axes, JSONAxis{
			ID:    a.Axis.String(),
			Name:  a.Name,
			Value: a.Value,
		})
	}

	for _, comment := range res.Comments {
		output.Comments = append(output.Comments, JSONComment{
			Rule: comment.Rule,
			Kind: comment.Kind.String(),
			Text: r.labels.Comment(comment).Text,
		})
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func (r *JSONReporter) label(category string, l interface{ String() string }) JSONLabel {
	return JSONLabel{
		Category: r.labels.Categories[category],
		ID:       l.String(),
		Text:     r.labels.Label(l).Text,
	}
}
