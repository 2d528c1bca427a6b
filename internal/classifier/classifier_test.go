package classifier

import (
	"math"
	"testing"

	"github.com/pthm/speechstyle/internal/analyzer"
)

func TestClassifySpeed(t *testing.T) {
	tests := []struct {
		speed float64
		want  SpeedLabel
	}{
		{0, Calm},
		{99.99, Calm},
		{100, Fast},
		{100.01, Fast},
		{6000, Fast},
	}

	for _, tt := range tests {
		if got := ClassifySpeed(tt.speed); got != tt.want {
			t.Errorf("ClassifySpeed(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestClassifyInfo(t *testing.T) {
	tests := []struct {
		ratio float64
		want  InfoLabel
	}{
		{0, Loose},
		{0.4, Loose},
		{0.41, Dense},
		{1, Dense},
	}

	for _, tt := range tests {
		if got := ClassifyInfo(tt.ratio); got != tt.want {
			t.Errorf("ClassifyInfo(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestClassifyClarity(t *testing.T) {
	tests := []struct {
		ratio float64
		want  ClarityLabel
	}{
		{0, Plain},
		{29.9, Plain},
		{30, Technical},
		{60, Technical},
		{100, Technical},
	}

	for _, tt := range tests {
		if got := ClassifyClarity(tt.ratio); got != tt.want {
			t.Errorf("ClassifyClarity(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestClassifyFillers(t *testing.T) {
	tests := []struct {
		total int
		want  FillerLabel
	}{
		{0, Smooth},
		{1, Smooth},
		{5, Smooth},
		{6, FillerHeavy},
		{40, FillerHeavy},
	}

	for _, tt := range tests {
		if got := ClassifyFillers(tt.total); got != tt.want {
			t.Errorf("ClassifyFillers(%d) = %v, want %v", tt.total, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	m := &analyzer.Measurements{
		SpeedCharsPerMinute: 6000,
		NounRatio:           0.2,
		KanjiRatio:          60,
		FillerTotal:         1,
	}

	want := Classification{
		Speed:   Fast,
		Info:    Loose,
		Clarity: Technical,
		Filler:  Smooth,
	}

	if got := Classify(m); got != want {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		m    analyzer.Measurements
		want ChartScores
	}{
		{
			name: "zero measurements",
			m:    analyzer.Measurements{},
			want: ChartScores{Speed: 0, Info: 0, Clarity: 5, Filler: 0},
		},
		{
			name: "speed clamped",
			m:    analyzer.Measurements{SpeedCharsPerMinute: 6000},
			want: ChartScores{Speed: 5, Info: 0, Clarity: 5, Filler: 0},
		},
		{
			name: "single filler",
			m:    analyzer.Measurements{SpeedCharsPerMinute: 8, FillerTotal: 1},
			want: ChartScores{Speed: 0.16, Info: 0, Clarity: 5, Filler: 0.5},
		},
		{
			name: "kanji ratio sixty",
			m:    analyzer.Measurements{KanjiRatio: 60},
			want: ChartScores{Speed: 0, Info: 0, Clarity: 2, Filler: 0},
		},
		{
			name: "all kanji",
			m:    analyzer.Measurements{KanjiRatio: 100},
			want: ChartScores{Speed: 0, Info: 0, Clarity: 0, Filler: 0},
		},
		{
			name: "every axis saturated",
			m: analyzer.Measurements{
				SpeedCharsPerMinute: 300,
				NounRatio:           1,
				KanjiRatio:          0,
				FillerTotal:         30,
			},
			want: ChartScores{Speed: 5, Info: 5, Clarity: 5, Filler: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(&tt.m)
			for _, a := range Axes {
				if math.Abs(got.Get(a)-tt.want.Get(a)) > 1e-9 {
					t.Errorf("Score().%s = %v, want %v", a, got.Get(a), tt.want.Get(a))
				}
				if got.Get(a) < 0 || got.Get(a) > MaxScore {
					t.Errorf("Score().%s = %v, out of [0, %v]", a, got.Get(a), MaxScore)
				}
			}
		})
	}
}

func TestChartScores_Loop(t *testing.T) {
	s := ChartScores{Speed: 1, Info: 2, Clarity: 3, Filler: 4}

	loop := s.Loop()
	want := []float64{1, 2, 3, 4, 1}
	if len(loop) != len(want) {
		t.Fatalf("Loop() = %v, want %v", loop, want)
	}
	for i := range want {
		if loop[i] != want[i] {
			t.Errorf("Loop()[%d] = %v, want %v", i, loop[i], want[i])
		}
	}

	// Loop must not alias a previous result
	values := s.Values()
	values[0] = 99
	if s.Loop()[0] != 1 {
		t.Error("Loop() shares storage with Values()")
	}
}

func TestLabelStrings(t *testing.T) {
	tests := []struct {
		label fmtStringer
		want  string
	}{
		{Calm, "calm"},
		{Fast, "fast"},
		{Dense, "dense"},
		{Loose, "loose"},
		{Plain, "plain"},
		{Technical, "technical"},
		{Smooth, "smooth"},
		{FillerHeavy, "filler-heavy"},
		{AxisClarity, "clarity"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.label.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

type fmtStringer interface {
	String() string
}
