package feedback

import (
	"reflect"
	"testing"

	"github.com/pthm/speechstyle/internal/analyzer"
)

func kinds(comments []Comment) []CommentKind {
	out := make([]CommentKind, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.Kind)
	}
	return out
}

func TestGenerateComments(t *testing.T) {
	tests := []struct {
		name string
		m    analyzer.Measurements
		want []CommentKind
	}{
		{
			name: "balanced fallback",
			m: analyzer.Measurements{
				SpeedCharsPerMinute: 150,
				NounRatio:           0.5,
				KanjiRatio:          50,
				FillerTotal:         5,
			},
			want: []CommentKind{Balanced},
		},
		{
			name: "fast only",
			m:    analyzer.Measurements{SpeedCharsPerMinute: 150.5},
			want: []CommentKind{SpeedCaution},
		},
		{
			name: "fast and dense",
			m: analyzer.Measurements{
				SpeedCharsPerMinute: 200,
				NounRatio:           0.6,
			},
			want: []CommentKind{SpeedCaution, DensityPraise},
		},
		{
			name: "technical and fillers",
			m: analyzer.Measurements{
				KanjiRatio:  51,
				FillerTotal: 6,
			},
			want: []CommentKind{TechnicalCaution, FillerCaution},
		},
		{
			name: "everything fires in declaration order",
			m: analyzer.Measurements{
				SpeedCharsPerMinute: 6000,
				NounRatio:           1,
				KanjiRatio:          100,
				FillerTotal:         20,
			},
			want: []CommentKind{SpeedCaution, DensityPraise, TechnicalCaution, FillerCaution},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(GenerateComments(&tt.m))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateComments() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateComments_RuleNames(t *testing.T) {
	m := &analyzer.Measurements{SpeedCharsPerMinute: 200, FillerTotal: 10}

	comments := GenerateComments(m)
	if len(comments) != 2 {
		t.Fatalf("GenerateComments() returned %d comments, want 2", len(comments))
	}
	if comments[0].Rule != "speed" || comments[1].Rule != "filler" {
		t.Errorf("rule names = %q, %q, want speed, filler", comments[0].Rule, comments[1].Rule)
	}

	balanced := GenerateComments(&analyzer.Measurements{})
	if balanced[0].Rule != BalancedRuleName {
		t.Errorf("fallback rule = %q, want %q", balanced[0].Rule, BalancedRuleName)
	}
}

func TestRegistry_Get(t *testing.T) {
	r := DefaultRegistry()

	for _, name := range []string{"speed", "density", "technical", "filler"} {
		if r.Get(name) == nil {
			t.Errorf("Get(%q) = nil, want rule", name)
		}
	}
	if r.Get("missing") != nil {
		t.Error("Get(missing) != nil")
	}
	if len(r.Rules()) != 4 {
		t.Errorf("len(Rules()) = %d, want 4", len(r.Rules()))
	}
}

func TestRegistry_EmptyRegistryFallsBack(t *testing.T) {
	r := NewRegistry()

	got := kinds(r.Generate(&analyzer.Measurements{SpeedCharsPerMinute: 1000}))
	if !reflect.DeepEqual(got, []CommentKind{Balanced}) {
		t.Errorf("Generate() = %v, want [balanced]", got)
	}
}

func TestSpeedRule_CustomLimit(t *testing.T) {
	r := &SpeedRule{MaxCharsPerMinute: 100}

	if _, ok := r.Check(&analyzer.Measurements{SpeedCharsPerMinute: 120}); !ok {
		t.Error("Check(120) with limit 100 did not fire")
	}
	if _, ok := r.Check(&analyzer.Measurements{SpeedCharsPerMinute: 100}); ok {
		t.Error("Check(100) with limit 100 fired")
	}
}

func TestCommentKindString(t *testing.T) {
	tests := []struct {
		kind     CommentKind
		expected string
	}{
		{Balanced, "balanced"},
		{SpeedCaution, "speed-caution"},
		{DensityPraise, "density-praise"},
		{TechnicalCaution, "technical-caution"},
		{FillerCaution, "filler-caution"},
		{CommentKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("CommentKind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}
