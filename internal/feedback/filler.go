package feedback

import (
	"github.com/pthm/speechstyle/internal/analyzer"
)

// FillerRule warns when filler words stand out
type FillerRule struct {
	MaxFillers int
}

func (r *FillerRule) Name() string {
	return "filler"
}

func (r *FillerRule) Description() string {
	return "Warns when filler words occur more than a handful of times"
}

func (r *FillerRule) Check(m *analyzer.Measurements) (Comment, bool) {
	limit := r.MaxFillers
	if limit == 0 {
		limit = 5 // Default
	}

	if m.FillerTotal > limit {
		return Comment{Rule: r.Name(), Kind: FillerCaution}, true
	}
	return Comment{}, false
}
