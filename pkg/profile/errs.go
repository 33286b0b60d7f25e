package profile

import "errors"

var (
	// ErrNoSemesters indicates a snapshot without a semesters object.
	// Such a snapshot is corrupt; there is no partial recovery.
	ErrNoSemesters = errors.New("profile: snapshot has no semesters")
)
