package diagnosis

import (
	"context"
	"fmt"

	"github.com/pthm/speechstyle/internal/analyzer"
	"github.com/pthm/speechstyle/internal/classifier"
	"github.com/pthm/speechstyle/internal/feedback"
	"github.com/pthm/speechstyle/internal/tokenizer"
)

// ErrEmptyText is returned for empty input. Callers treat it as "nothing to show".
var ErrEmptyText = analyzer.ErrEmptyText

// Stage identifies a step of a diagnosis run
type Stage int

const (
	StageTokenize Stage = iota
	StageMeasure
	StageClassify
	StageFeedback
)

func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageMeasure:
		return "measure"
	case StageClassify:
		return "classify"
	case StageFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// Result is the complete outcome of one diagnosis run
type Result struct {
	Text           string
	TokenCount     int
	Measurements   *analyzer.Measurements
	Classification classifier.Classification
	Scores         classifier.ChartScores
	Comments       []feedback.Comment
}

// Diagnoser runs text through tokenization, measurement, classification
// and feedback. It holds no per-run state and may be reused.
type Diagnoser struct {
	tokenizer  tokenizer.Tokenizer
	classifier classifier.Classifier
	rules      *feedback.Registry
	onStage    func(Stage)
}

// Option configures a Diagnoser
type Option func(*Diagnoser)

// WithClassifier replaces the default heuristic classifier
func WithClassifier(c classifier.Classifier) Option {
	return func(d *Diagnoser) {
		d.classifier = c
	}
}

// WithRegistry replaces the default feedback rules
func WithRegistry(r *feedback.Registry) Option {
	return func(d *Diagnoser) {
		d.rules = r
	}
}

// WithStageHook registers a callback invoked as each stage starts
func WithStageHook(fn func(Stage)) Option {
	return func(d *Diagnoser) {
		d.onStage = fn
	}
}

// New creates a Diagnoser around an already constructed tokenizer
func New(tok tokenizer.Tokenizer, opts ...Option) *Diagnoser {
	d := &Diagnoser{
		tokenizer:  tok,
		classifier: classifier.NewHeuristicClassifier(),
		rules:      feedback.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Diagnose analyzes text spoken over durationSeconds.
// Empty text yields ErrEmptyText; a non-positive duration yields
// analyzer.ErrInvalidDuration. Tokenizer errors are returned wrapped.
func (d *Diagnoser) Diagnose(ctx context.Context, text string, durationSeconds float64) (*Result, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if err := analyzer.ValidateDuration(durationSeconds); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.stage(StageTokenize)
	tokens, err := d.tokenizer.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	d.stage(StageMeasure)
	m, err := analyzer.ComputeMeasurements(text, durationSeconds, tokens)
	if err != nil {
		return nil, err
	}

	d.stage(StageClassify)
	result := &Result{
		Text:           text,
		TokenCount:     len(tokens),
		Measurements:   m,
		Classification: d.classifier.Classify(m),
		Scores:         d.classifier.Score(m),
	}

	d.stage(StageFeedback)
	result.Comments = d.rules.Generate(m)

	return result, nil
}

func (d *Diagnoser) stage(s Stage) {
	if d.onStage != nil {
		d.onStage(s)
	}
}
