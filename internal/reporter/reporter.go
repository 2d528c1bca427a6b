package reporter

import (
	"github.com/pthm/speechstyle/internal/classifier"
	"github.com/pthm/speechstyle/internal/diagnosis"
	"github.com/pthm/speechstyle/internal/labels"
)

// Document is what a reporter renders: a diagnosis plus where it came from
type Document struct {
	Title  string
	Source string
	Result *diagnosis.Result
}

// Reporter defines the interface for outputting diagnosis results
type Reporter interface {
	// Report outputs the diagnosis
	Report(doc *Document) error
}

// AxisScore is one labelled radar chart value
type AxisScore struct {
	Axis  classifier.Axis
	Name  string
	Value float64
}

// ComputeAxes pairs each chart score with its display name, in axis order
func ComputeAxes(scores classifier.ChartScores, set *labels.Set) []AxisScore {
	axes := make([]AxisScore, 0, len(classifier.Axes))
	for _, a := range classifier.Axes {
		axes = append(axes, AxisScore{
			Axis:  a,
			Name:  set.Axis(a),
			Value: scores.Get(a),
		})
	}
	return axes
}
