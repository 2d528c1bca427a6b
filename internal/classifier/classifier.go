package classifier

import (
	"github.com/pthm/speechstyle/internal/analyzer"
)

// SpeedLabel classifies speaking speed
type SpeedLabel int

const (
	Calm SpeedLabel = iota
	Fast
)

func (l SpeedLabel) String() string {
	switch l {
	case Calm:
		return "calm"
	case Fast:
		return "fast"
	default:
		return "unknown"
	}
}

// InfoLabel classifies information density
type InfoLabel int

const (
	Loose InfoLabel = iota
	Dense
)

func (l InfoLabel) String() string {
	switch l {
	case Loose:
		return "loose"
	case Dense:
		return "dense"
	default:
		return "unknown"
	}
}

// ClarityLabel classifies lexical difficulty
type ClarityLabel int

const (
	Plain ClarityLabel = iota
	Technical
)

func (l ClarityLabel) String() string {
	switch l {
	case Plain:
		return "plain"
	case Technical:
		return "technical"
	default:
		return "unknown"
	}
}

// FillerLabel classifies filler-word frequency
type FillerLabel int

const (
	Smooth FillerLabel = iota
	FillerHeavy
)

func (l FillerLabel) String() string {
	switch l {
	case Smooth:
		return "smooth"
	case FillerHeavy:
		return "filler-heavy"
	default:
		return "unknown"
	}
}

// Classification holds one qualitative label per metric
type Classification struct {
	Speed   SpeedLabel
	Info    InfoLabel
	Clarity ClarityLabel
	Filler  FillerLabel
}

// Axis identifies one axis of the radar chart
type Axis int

const (
	AxisSpeed Axis = iota
	AxisInfo
	AxisClarity
	AxisFiller
)

// Axes lists the chart axes in display order
var Axes = []Axis{AxisSpeed, AxisInfo, AxisClarity, AxisFiller}

func (a Axis) String() string {
	switch a {
	case AxisSpeed:
		return "speed"
	case AxisInfo:
		return "info"
	case AxisClarity:
		return "clarity"
	case AxisFiller:
		return "filler"
	default:
		return "unknown"
	}
}

// ChartScores holds the metrics normalized to [0, 5] for the radar chart
type ChartScores struct {
	Speed   float64 `json:"speed"`
	Info    float64 `json:"info"`
	Clarity float64 `json:"clarity"`
	Filler  float64 `json:"filler"`
}

// MaxScore is the upper bound of every chart axis
const MaxScore = 5.0

// Values returns the scores in axis order
func (s ChartScores) Values() []float64 {
	return []float64{s.Speed, s.Info, s.Clarity, s.Filler}
}

// Loop returns the scores in axis order with the first value repeated
// at the end, closing the polygon
func (s ChartScores) Loop() []float64 {
	v := s.Values()
	return append(v, v[0])
}

// Get returns the score for one axis
func (s ChartScores) Get(a Axis) float64 {
	switch a {
	case AxisSpeed:
		return s.Speed
	case AxisInfo:
		return s.Info
	case AxisClarity:
		return s.Clarity
	case AxisFiller:
		return s.Filler
	default:
		return 0
	}
}

// Classifier maps measurements to labels and chart scores
type Classifier interface {
	Classify(m *analyzer.Measurements) Classification
	Score(m *analyzer.Measurements) ChartScores
}
