package feedback

import (
	"github.com/pthm/speechstyle/internal/analyzer"
)

// TechnicalRule warns when the vocabulary reads as technical
type TechnicalRule struct {
	MaxKanjiPercent float64
}

func (r *TechnicalRule) Name() string {
	return "technical"
}

func (r *TechnicalRule) Description() string {
	return "Warns when kanji make up more than half of the text"
}

func (r *TechnicalRule) Check(m *analyzer.Measurements) (Comment, bool) {
	limit := r.MaxKanjiPercent
	if limit == 0 {
		limit = 50 // Default
	}

	if m.KanjiRatio > limit {
		return Comment{Rule: r.Name(), Kind: TechnicalCaution}, true
	}
	return Comment{}, false
}
