package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pthm/speechstyle/internal/analyzer"
	"github.com/pthm/speechstyle/internal/classifier"
	"github.com/pthm/speechstyle/internal/diagnosis"
	"github.com/pthm/speechstyle/internal/feedback"
	"github.com/pthm/speechstyle/internal/labels"
	"github.com/pthm/speechstyle/internal/ui"
)

func testDocument(t *testing.T) *Document {
	t.Helper()

	m, err := analyzer.ComputeMeasurements("えっとこんにちは", 60, nil)
	if err != nil {
		t.Fatalf("ComputeMeasurements() error = %v", err)
	}

	return &Document{
		Title:  "朝会",
		Source: "talk.txt",
		Result: &diagnosis.Result{
			Text:           "えっとこんにちは",
			Measurements:   m,
			Classification: classifier.Classify(m),
			Scores:         classifier.Score(m),
			Comments:       feedback.GenerateComments(m),
		},
	}
}

func testLabels(t *testing.T) *labels.Set {
	t.Helper()
	set, err := labels.Load(labels.Default)
	if err != nil {
		t.Fatalf("labels.Load() error = %v", err)
	}
	return set
}

func TestTerminalReporter_Plain(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal")

	if err := NewTerminalReporter(&buf, u, testLabels(t)).Report(testDocument(t)); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	out := buf.String()

	want := []string{
		"朝会",
		"話し方タイプ診断",
		"- 話の速さ：ゆったり",
		"- 情報量：ゆる語り派",
		"- わかりやすさ：平易で親しみやすい",
		"- 口癖指数：スムーズ",
		"話の速さ：8文字／分",
		"名詞密度：0名詞／0語（0.0%）",
		"漢字率：0漢字／8文字（0.0%）",
		"口癖回数：えっと：1回、 えー：0回、 はい：0回（合計：1回）",
		"- バランスの取れた話し方です！",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\n%s", w, out)
		}
	}

	// Icons are dropped when output is not a terminal
	if strings.Contains(out, "🐢") || strings.Contains(out, "🎉") {
		t.Errorf("plain output contains icons:\n%s", out)
	}
}

func TestTerminalReporter_ChartBars(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal")

	out := NewTerminalReporter(&buf, u, testLabels(t)).Render(testDocument(t))

	// clarity is 5.0 for text without kanji, filler is 0.5
	if !strings.Contains(out, "["+strings.Repeat("#", barWidth)+"] 5.0") {
		t.Errorf("clarity bar not full:\n%s", out)
	}
	if !strings.Contains(out, "0.5") {
		t.Errorf("filler score missing:\n%s", out)
	}
}

func TestAsciiBar(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "[..........]"},
		{0.5, "[#####.....]"},
		{1, "[##########]"},
		{1.5, "[##########]"},
	}

	for _, tt := range tests {
		if got := asciiBar(tt.pct, 10); got != tt.want {
			t.Errorf("asciiBar(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer

	if err := NewJSONReporter(&buf, testLabels(t)).Report(testDocument(t)); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if out.Title != "朝会" {
		t.Errorf("Title = %q", out.Title)
	}
	if got := out.Classification["filler"]; got.ID != "smooth" || got.Text != "スムーズ" {
		t.Errorf("Classification[filler] = %+v", got)
	}
	if len(out.Chart.Axes) != 4 || out.Chart.Axes[0].ID != "speed" {
		t.Errorf("Chart.Axes = %+v", out.Chart.Axes)
	}
	if len(out.Chart.Loop) != 5 || out.Chart.Loop[0] != out.Chart.Loop[4] {
		t.Errorf("Chart.Loop = %v, want closed loop of 5", out.Chart.Loop)
	}
	if out.Chart.Max != 5 {
		t.Errorf("Chart.Max = %v, want 5", out.Chart.Max)
	}
	if len(out.Comments) != 1 || out.Comments[0].Kind != "balanced" {
		t.Errorf("Comments = %+v", out.Comments)
	}
	if out.Measurements.FillerTotal != 1 {
		t.Errorf("Measurements.FillerTotal = %d, want 1", out.Measurements.FillerTotal)
	}
	if out.Readouts.CharsPerMinute != 8 {
		t.Errorf("Readouts.CharsPerMinute = %d, want 8", out.Readouts.CharsPerMinute)
	}
}

func TestChartReporter(t *testing.T) {
	var buf bytes.Buffer

	if err := NewChartReporter(&buf, testLabels(t)).Report(testDocument(t)); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	out := buf.String()

	for _, w := range []string{"<html", "radar", "話の速さ", "口癖度"} {
		if !strings.Contains(out, w) {
			t.Errorf("chart HTML missing %q", w)
		}
	}
}

func TestComputeAxes(t *testing.T) {
	scores := classifier.ChartScores{Speed: 1, Info: 2, Clarity: 3, Filler: 4}

	axes := ComputeAxes(scores, testLabels(t))
	if len(axes) != 4 {
		t.Fatalf("len(ComputeAxes()) = %d, want 4", len(axes))
	}
	for i, a := range axes {
		if a.Value != float64(i+1) {
			t.Errorf("axes[%d].Value = %v, want %d", i, a.Value, i+1)
		}
	}
	if axes[3].Name != "口癖度" {
		t.Errorf("axes[3].Name = %q, want 口癖度", axes[3].Name)
	}
}
