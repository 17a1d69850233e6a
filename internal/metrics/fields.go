package metrics

import (
	"context"
	"errors"
)

// Attribute keys shared by every instrument.
const (
	AttrDecider = "decider"
	AttrPhase   = "phase"
	AttrOutcome = "outcome"
)

// Run outcome values for AttrOutcome.
const (
	OutcomeComplete  = "complete"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
)

// runOutcome labels a finished run. Cancellation is not a failure.
func runOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeComplete
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeFailed
	}
}
