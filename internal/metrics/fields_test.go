package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRunOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, OutcomeComplete},
		{errors.New("decider exploded"), OutcomeFailed},
		{fmt.Errorf("deciding: %w", context.Canceled), OutcomeCancelled},
		{context.DeadlineExceeded, OutcomeCancelled},
	}
	for _, tc := range cases {
		if got := runOutcome(tc.err); got != tc.want {
			t.Fatalf("runOutcome(%v): expected %q, got %q", tc.err, tc.want, got)
		}
	}
}
