package chartab

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownGroup is returned when no table exists for a group label.
	ErrUnknownGroup = errors.New("chartab: no table for group")
	// ErrNoIdentity is returned when a table lists no identity operation.
	ErrNoIdentity = errors.New("chartab: table has no identity operation")
)

// sumRuleError reports a table violating the dimension sum rule
// sum(dim^2) == group order.
func sumRuleError(group string, got, order int) error {
	return fmt.Errorf("chartab: table %q violates sum rule: sum(dim^2) = %d, group order = %d",
		group, got, order)
}

// AlignmentError reports that a caller-supplied operation list could not
// be matched one-to-one against a table's operations.
type AlignmentError struct {
	Group     string
	Operation int // index in the caller's list, -1 for a count mismatch
	Have      int
	Want      int
}

func (e *AlignmentError) Error() string {
	if e.Operation < 0 {
		return fmt.Sprintf("chartab: table %q has %d operations, caller supplied %d", e.Group, e.Want, e.Have)
	}
	return fmt.Sprintf("chartab: table %q has no unique match for caller operation %d", e.Group, e.Operation)
}
