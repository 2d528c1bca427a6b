package classifier

import (
	"math"

	"github.com/pthm/speechstyle/internal/analyzer"
)

// Thresholds used by the default classifier. Values on a boundary always
// fall into the lower-intensity label.
const (
	CalmSpeedBelow      = 100.0 // chars/min
	DenseNounRatioAbove = 0.4
	PlainKanjiBelow     = 30.0 // percent
	SmoothFillersAtMost = 5
)

// Divisors used to normalize each metric onto the 0-5 chart scale
const (
	speedPerPoint  = 50.0 // 100 chars/min ≈ 2.0
	infoPerRatio   = 5.0  // ratio 1.0 → 5.0
	kanjiPerPoint  = 20.0 // inverted: fewer kanji scores higher
	fillerPerPoint = 2.0  // 2 fillers → 1.0
)

// HeuristicClassifier classifies measurements with fixed thresholds
type HeuristicClassifier struct{}

// NewHeuristicClassifier creates a new heuristic classifier
func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{}
}

// Classify assigns one label per metric
func (c *HeuristicClassifier) Classify(m *analyzer.Measurements) Classification {
	return Classification{
		Speed:   ClassifySpeed(m.SpeedCharsPerMinute),
		Info:    ClassifyInfo(m.NounRatio),
		Clarity: ClassifyClarity(m.KanjiRatio),
		Filler:  ClassifyFillers(m.FillerTotal),
	}
}

// Score normalizes every metric into [0, 5]
func (c *HeuristicClassifier) Score(m *analyzer.Measurements) ChartScores {
	return ChartScores{
		Speed:   math.Min(m.SpeedCharsPerMinute/speedPerPoint, MaxScore),
		Info:    math.Min(m.NounRatio*infoPerRatio, MaxScore),
		Clarity: MaxScore - math.Min(m.KanjiRatio/kanjiPerPoint, MaxScore),
		Filler:  math.Min(float64(m.FillerTotal)/fillerPerPoint, MaxScore),
	}
}

func ClassifySpeed(charsPerMinute float64) SpeedLabel {
	if charsPerMinute < CalmSpeedBelow {
		return Calm
	}
	return Fast
}

func ClassifyInfo(nounRatio float64) InfoLabel {
	if nounRatio > DenseNounRatioAbove {
		return Dense
	}
	return Loose
}

func ClassifyClarity(kanjiRatio float64) ClarityLabel {
	if kanjiRatio < PlainKanjiBelow {
		return Plain
	}
	return Technical
}

func ClassifyFillers(total int) FillerLabel {
	if total <= SmoothFillersAtMost {
		return Smooth
	}
	return FillerHeavy
}

var defaultClassifier = NewHeuristicClassifier()

// Classify classifies m with the default thresholds
func Classify(m *analyzer.Measurements) Classification {
	return defaultClassifier.Classify(m)
}

// Score scores m with the default normalization
func Score(m *analyzer.Measurements) ChartScores {
	return defaultClassifier.Score(m)
}
