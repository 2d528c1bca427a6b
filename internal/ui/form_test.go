package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type renderCall struct {
	text     string
	duration int
}

func newTestForm(calls *[]renderCall) FormModel {
	m := NewFormModel(FormConfig{
		Title:         "話し方タイプ診断",
		Placeholder:   "日本語原稿を入力してください",
		DurationLabel: "録音時間",
		Render: func(text string, duration int) string {
			*calls = append(*calls, renderCall{text, duration})
			return "RESULT:" + text
		},
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return updated.(FormModel)
}

func send(m FormModel, msg tea.Msg) FormModel {
	updated, _ := m.Update(msg)
	return updated.(FormModel)
}

func TestClampDuration(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 30},
		{29, 30},
		{30, 30},
		{180, 180},
		{600, 600},
		{601, 600},
	}

	for _, tt := range tests {
		if got := ClampDuration(tt.in); got != tt.want {
			t.Errorf("ClampDuration(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormModel_EmptyTextDoesNotRender(t *testing.T) {
	var calls []renderCall
	m := newTestForm(&calls)

	if len(calls) != 0 {
		t.Errorf("Render called %d times for empty text", len(calls))
	}
	if m.Duration() != DefaultDurationSeconds {
		t.Errorf("Duration() = %d, want %d", m.Duration(), DefaultDurationSeconds)
	}
	if !strings.Contains(m.View(), "日本語原稿を入力してください") {
		t.Error("View() does not show the placeholder for empty input")
	}
}

func TestFormModel_TypingRenders(t *testing.T) {
	var calls []renderCall
	m := newTestForm(&calls)

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("はい")})

	if m.Text() != "はい" {
		t.Fatalf("Text() = %q, want はい", m.Text())
	}
	if len(calls) == 0 {
		t.Fatal("Render not called after typing")
	}
	last := calls[len(calls)-1]
	if last.text != "はい" || last.duration != DefaultDurationSeconds {
		t.Errorf("last Render call = %+v", last)
	}
	if !strings.Contains(m.View(), "RESULT:はい") {
		t.Error("View() does not contain rendered results")
	}
}

func TestFormModel_Slider(t *testing.T) {
	var calls []renderCall
	m := newTestForm(&calls)
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("えっと")})

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Duration() != DefaultDurationSeconds+DurationStep {
		t.Errorf("Duration() = %d after right, want %d", m.Duration(), DefaultDurationSeconds+DurationStep)
	}
	if last := calls[len(calls)-1]; last.duration != m.Duration() {
		t.Errorf("last Render duration = %d, want %d", last.duration, m.Duration())
	}

	// Typed keys go to the slider, not the text, while it has focus
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	if m.Text() != "えっと" {
		t.Errorf("Text() = %q, slider keys leaked into the textarea", m.Text())
	}
	if m.Duration() != DefaultDurationSeconds {
		t.Errorf("Duration() = %d after h, want %d", m.Duration(), DefaultDurationSeconds)
	}

	for i := 0; i < 100; i++ {
		m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.Duration() != MinDurationSeconds {
		t.Errorf("Duration() = %d, want clamp at %d", m.Duration(), MinDurationSeconds)
	}
}

func TestFormModel_Quit(t *testing.T) {
	var calls []renderCall
	m := newTestForm(&calls)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Update(esc) returned nil cmd, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Update(esc) did not quit")
	}
}

func TestNew_DetectsMode(t *testing.T) {
	var buf bytes.Buffer

	if u := New(&buf, &buf, "json"); !u.IsJSON() {
		t.Error("New(json) is not JSON mode")
	}

	u := New(&buf, &buf, "terminal")
	if u.Mode != OutputModePlain {
		t.Errorf("New(buffer) mode = %v, want plain", u.Mode)
	}
	if u.ShowIcons() {
		t.Error("plain mode shows icons")
	}
	if u.StartProgress() != nil {
		t.Error("StartProgress() in plain mode != nil")
	}
}

func TestUI_Warn(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, "terminal")

	u.Warn("text looks like %s", "English")

	if out.Len() != 0 {
		t.Errorf("Warn wrote to stdout: %q", out.String())
	}
	if got := errOut.String(); got != "WARN: text looks like English\n" {
		t.Errorf("Warn output = %q", got)
	}
}
