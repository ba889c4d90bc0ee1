package store

import (
	"github.com/avalder/pathwise/ent"
	"github.com/avalder/pathwise/internal/errs"
)

// storeErr maps ent errors onto the engine's error taxonomy. Callers
// handle not-found and unique-constraint cases themselves where the
// code matters; everything else is a store availability problem.
func storeErr(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errs.Unavailable(err, format, args...)
}

// isConstraint reports whether err is a uniqueness or check violation.
func isConstraint(err error) bool {
	return ent.IsConstraintError(err)
}
