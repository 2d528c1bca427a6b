package feedback

import (
	"github.com/pthm/speechstyle/internal/analyzer"
)

// SpeedRule warns when the speaker talks noticeably fast
type SpeedRule struct {
	// MaxCharsPerMinute overrides the default limit when non-zero
	MaxCharsPerMinute float64
}

func (r *SpeedRule) Name() string {
	return "speed"
}

func (r *SpeedRule) Description() string {
	return "Warns when speaking speed exceeds a comfortable listening pace"
}

func (r *SpeedRule) Check(m *analyzer.Measurements) (Comment, bool) {
	limit := r.MaxCharsPerMinute
	if limit == 0 {
		limit = 150 // Default
	}

	if m.SpeedCharsPerMinute > limit {
		return Comment{Rule: r.Name(), Kind: SpeedCaution}, true
	}
	return Comment{}, false
}
