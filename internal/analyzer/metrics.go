package analyzer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/pthm/speechstyle/internal/tokenizer"
)

var (
	// ErrEmptyText is returned when there is no text to measure
	ErrEmptyText = errors.New("text is empty")

	// ErrInvalidDuration is returned when the duration is not a positive, finite number of seconds
	ErrInvalidDuration = errors.New("invalid duration")
)

// Kanji code point range counted by the clarity metric.
// This stops at U+9FA5, short of the end of the CJK Unified Ideographs block.
const (
	KanjiFirst rune = 0x4E00
	KanjiLast  rune = 0x9FA5
)

// Fillers is the filler lexicon, in reporting order
var Fillers = []string{"えっと", "えー", "はい"}

// FillerCount is the number of occurrences of one filler expression
type FillerCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Measurements contains the raw metrics derived from one transcript
type Measurements struct {
	DurationSeconds float64 `json:"duration_seconds"`
	Characters      int     `json:"characters"`

	TotalTrackedWords int     `json:"total_tracked_words"`
	NounCount         int     `json:"noun_count"`
	VerbCount         int     `json:"verb_count"`
	AdjectiveCount    int     `json:"adjective_count"`
	NounRatio         float64 `json:"noun_ratio"`

	SpeedCharsPerMinute float64 `json:"speed_chars_per_minute"`

	KanjiCount int     `json:"kanji_count"`
	KanjiRatio float64 `json:"kanji_ratio"` // percent, 0-100

	FillerCounts []FillerCount `json:"filler_counts"`
	FillerTotal  int           `json:"filler_total"`
}

// ComputeMeasurements derives all metrics from the raw text, the assumed
// speaking duration and the tokens produced for that text.
// Empty text and non-positive durations are rejected.
func ComputeMeasurements(text string, durationSeconds float64, tokens []tokenizer.Token) (*Measurements, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if err := ValidateDuration(durationSeconds); err != nil {
		return nil, err
	}

	m := &Measurements{
		DurationSeconds: durationSeconds,
	}

	countPartsOfSpeech(m, tokens)
	countCharacters(m, text)
	countFillers(m, text)

	m.SpeedCharsPerMinute = float64(m.Characters) / durationSeconds * 60
	m.KanjiRatio = float64(m.KanjiCount) / float64(m.Characters) * 100

	return m, nil
}

// ValidateDuration checks that a duration in seconds can be used as a divisor
func ValidateDuration(seconds float64) error {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return fmt.Errorf("%w: %v seconds (must be > 0)", ErrInvalidDuration, seconds)
	}
	return nil
}

func countPartsOfSpeech(m *Measurements, tokens []tokenizer.Token) {
	for _, tok := range tokens {
		switch BucketOf(tok.PartOfSpeech) {
		case Noun:
			m.NounCount++
		case Verb:
			m.VerbCount++
		case Adjective:
			m.AdjectiveCount++
		default:
			continue
		}
		m.TotalTrackedWords++
	}

	if m.TotalTrackedWords > 0 {
		m.NounRatio = float64(m.NounCount) / float64(m.TotalTrackedWords)
	}
}

// countCharacters counts runes and kanji in a single pass
func countCharacters(m *Measurements, text string) {
	for _, r := range text {
		m.Characters++
		if IsKanji(r) {
			m.KanjiCount++
		}
	}
}

func countFillers(m *Measurements, text string) {
	m.FillerCounts = make([]FillerCount, 0, len(Fillers))
	for _, word := range Fillers {
		// strings.Count does not count overlapping matches
		n := strings.Count(text, word)
		m.FillerCounts = append(m.FillerCounts, FillerCount{Word: word, Count: n})
		m.FillerTotal += n
	}
}

// IsKanji reports whether r falls in the counted kanji range
func IsKanji(r rune) bool {
	return r >= KanjiFirst && r <= KanjiLast
}

// FillerCountOf returns the count recorded for word, or 0 if it is not in the lexicon
func (m *Measurements) FillerCountOf(word string) int {
	for _, fc := range m.FillerCounts {
		if fc.Word == word {
			return fc.Count
		}
	}
	return 0
}

// NounPercent returns the noun ratio as a percentage rounded to one decimal
func (m *Measurements) NounPercent() float64 {
	return Round1(m.NounRatio * 100)
}

// KanjiPercent returns the kanji ratio rounded to one decimal
func (m *Measurements) KanjiPercent() float64 {
	return Round1(m.KanjiRatio)
}

// CharsPerMinute returns the speaking speed truncated to an integer
func (m *Measurements) CharsPerMinute() int {
	return int(m.SpeedCharsPerMinute)
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
