package phonio

import (
	"errors"
	"fmt"
)

var (
	// ErrQpointIndex reports a q-point index outside the document.
	ErrQpointIndex = errors.New("phonio: q-point index out of range")
	// ErrNoOperations reports a document without symmetry operations.
	ErrNoOperations = errors.New("phonio: document carries no symmetry operations")
	// ErrZeroDisplacement reports a displacement that normalizes to zero.
	ErrZeroDisplacement = errors.New("phonio: zero displacement cannot be normalized")
)

// FormatError reports a structurally invalid document section.
type FormatError struct {
	Section string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("phonio: invalid %s: %s", e.Section, e.Reason)
}
