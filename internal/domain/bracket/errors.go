package bracket

import (
	"errors"
	"fmt"
)

// StructuralError reports a violated bracket invariant. It is always fatal to a run.
type StructuralError struct {
	Invariant string
	Expected  any
	Actual    any
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("bracket: %s: expected %v, got %v", e.Invariant, e.Expected, e.Actual)
}

// AsStructuralError unwraps err into a StructuralError when possible.
func AsStructuralError(err error) (*StructuralError, bool) {
	var sErr *StructuralError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

func structural(invariant string, expected, actual any) error {
	return &StructuralError{Invariant: invariant, Expected: expected, Actual: actual}
}
