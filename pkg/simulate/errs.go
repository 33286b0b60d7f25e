package simulate

import "errors"

var (
	// ErrNoCompleted indicates a current-CGPA request against a profile
	// with zero completed credits. The figure is undefined, not zero.
	ErrNoCompleted = errors.New("simulate: no completed semesters")
)
