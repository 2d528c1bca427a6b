package feedback

import (
	"github.com/pthm/speechstyle/internal/analyzer"
)

// DensityRule praises transcripts packed with content words
type DensityRule struct {
	MinNounRatio float64
}

func (r *DensityRule) Name() string {
	return "density"
}

func (r *DensityRule) Description() string {
	return "Notes when more than half of the content words are nouns"
}

func (r *DensityRule) Check(m *analyzer.Measurements) (Comment, bool) {
	limit := r.MinNounRatio
	if limit == 0 {
		limit = 0.5 // Default
	}

	if m.NounRatio > limit {
		return Comment{Rule: r.Name(), Kind: DensityPraise}, true
	}
	return Comment{}, false
}
