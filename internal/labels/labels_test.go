package labels

import (
	"strings"
	"testing"

	"github.com/pthm/speechstyle/internal/classifier"
	"github.com/pthm/speechstyle/internal/feedback"
)

func TestLoad(t *testing.T) {
	set, err := Load(Default)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", Default, err)
	}
	if set.Name != Default {
		t.Errorf("Name = %q, want %q", set.Name, Default)
	}

	if _, err := Load("klingon"); err == nil {
		t.Error("Load(klingon) error = nil, want error")
	}
}

func TestAvailable(t *testing.T) {
	names := Available()
	if len(names) == 0 || names[0] != Default {
		t.Errorf("Available() = %v, want to include %q", names, Default)
	}
}

func TestSet_Labels(t *testing.T) {
	set, err := Load(Default)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		label fmtStringer
		want  string
	}{
		{classifier.Calm, "ゆったり"},
		{classifier.Fast, "早口気味"},
		{classifier.Dense, "情報詰め派"},
		{classifier.Loose, "ゆる語り派"},
		{classifier.Plain, "平易で親しみやすい"},
		{classifier.Technical, "知的で硬め"},
		{classifier.Smooth, "スムーズ"},
		{classifier.FillerHeavy, "口癖多め"},
	}

	for _, tt := range tests {
		t.Run(tt.label.String(), func(t *testing.T) {
			if got := set.Label(tt.label).Text; got != tt.want {
				t.Errorf("Label(%v).Text = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

type fmtStringer interface {
	String() string
}

func TestSet_AxisNames(t *testing.T) {
	set, err := Load(Default)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"話の速さ", "情報量", "わかりやすさ", "口癖度"}
	got := set.AxisNames()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("AxisNames() = %v, want %v", got, want)
	}
	if set.Category(classifier.AxisFiller) != "口癖指数" {
		t.Errorf("Category(filler) = %q, want 口癖指数", set.Category(classifier.AxisFiller))
	}
}

func TestSet_Comment(t *testing.T) {
	set, err := Load(Default)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	e := set.Comment(feedback.Comment{Kind: feedback.Balanced})
	if e.Icon != "🎉" || !strings.HasPrefix(e.Text, "バランスの取れた話し方です") {
		t.Errorf("Comment(balanced) = %+v", e)
	}
}

func TestEntry_Render(t *testing.T) {
	e := Entry{Icon: "🚀", Text: "早口気味"}

	if got := e.Render(true); got != "🚀 早口気味" {
		t.Errorf("Render(true) = %q", got)
	}
	if got := e.Render(false); got != "早口気味" {
		t.Errorf("Render(false) = %q", got)
	}
	if got := (Entry{Text: "x"}).Render(true); got != "x" {
		t.Errorf("Render(true) without icon = %q", got)
	}
}

func TestParse_RejectsIncompleteSet(t *testing.T) {
	data := []byte("name: broken\ncategories:\n  speed: 速さ\n")
	if _, err := parse(data); err == nil {
		t.Error("parse() error = nil, want missing-entry error")
	}
}
