package feedback

import (
	"github.com/pthm/speechstyle/internal/analyzer"
)

// CommentKind identifies an advisory comment. Display text lives in the
// label table, not here.
type CommentKind int

const (
	Balanced CommentKind = iota
	SpeedCaution
	DensityPraise
	TechnicalCaution
	FillerCaution
)

func (k CommentKind) String() string {
	switch k {
	case Balanced:
		return "balanced"
	case SpeedCaution:
		return "speed-caution"
	case DensityPraise:
		return "density-praise"
	case TechnicalCaution:
		return "technical-caution"
	case FillerCaution:
		return "filler-caution"
	default:
		return "unknown"
	}
}

// Comment is one piece of feedback produced by a rule
type Comment struct {
	Rule string
	Kind CommentKind
}

// Rule defines the interface for feedback rules
type Rule interface {
	// Name returns the unique identifier for this rule
	Name() string

	// Description returns a human-readable description
	Description() string

	// Check returns a comment when the rule fires
	Check(m *analyzer.Measurements) (Comment, bool)
}

// GenerateComments evaluates the default rules against m
func GenerateComments(m *analyzer.Measurements) []Comment {
	return DefaultRegistry().Generate(m)
}
