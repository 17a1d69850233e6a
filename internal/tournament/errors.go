package tournament

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDecider is returned when the driver was built without a decider.
	ErrNoDecider = errors.New("tournament: no decider configured")
	// ErrAlreadyRunning is returned when Run is called while another run is in progress.
	ErrAlreadyRunning = errors.New("tournament: run already in progress")
)

// DeciderError wraps a failure raised by the decider itself. The driver never retries it.
type DeciderError struct {
	Label string
	TeamA string
	TeamB string
	Err   error
}

func (e *DeciderError) Error() string {
	return fmt.Sprintf("tournament: %s: deciding %q vs %q: %v", e.Label, e.TeamA, e.TeamB, e.Err)
}

func (e *DeciderError) Unwrap() error {
	return e.Err
}

// AsDeciderError unwraps err into a DeciderError when possible.
func AsDeciderError(err error) (*DeciderError, bool) {
	var dErr *DeciderError
	if errors.As(err, &dErr) {
		return dErr, true
	}
	return nil, false
}
