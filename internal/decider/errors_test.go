package decider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
)

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{Decider: "anthropic", StatusCode: 429, RetryAfter: time.Second}
	if err.Error() != "decider rate limited (status=429)" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	custom := &RateLimitError{Message: "slow down"}
	if custom.Error() != "slow down" {
		t.Fatalf("unexpected message %q", custom.Error())
	}
}

func TestAsRateLimitError(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", &RateLimitError{RetryAfter: 2 * time.Second})
	rlErr, ok := AsRateLimitError(wrapped)
	if !ok || rlErr.RetryAfter != 2*time.Second {
		t.Fatalf("expected to unwrap rate limit error, got %v %v", rlErr, ok)
	}
	if _, ok := AsRateLimitError(errors.New("other")); ok {
		t.Fatalf("expected plain error not to match")
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), true},
		{"rate limited", &RateLimitError{StatusCode: http.StatusTooManyRequests}, true},
		{"server error", &StatusError{StatusCode: http.StatusInternalServerError}, true},
		{"overloaded", &StatusError{StatusCode: 529}, true},
		{"bad request", &StatusError{StatusCode: http.StatusBadRequest}, false},
		{"unauthorized", fmt.Errorf("call: %w", &StatusError{StatusCode: http.StatusUnauthorized}), false},
		{"unavailable", ErrUnavailable, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), false},
	}
	for _, tc := range cases {
		if got := Retryable(tc.err); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Decider: "anthropic", StatusCode: 401, Body: "invalid key"}
	if err.Error() != "anthropic: unexpected status 401: invalid key" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFuncAdapter(t *testing.T) {
	called := false
	var d Decider = Func(func(ctx context.Context, a, b string) (games.Outcome, error) {
		called = true
		return games.Outcome{Winner: a}, nil
	})
	out, err := d.Decide(context.Background(), "A", "B")
	if err != nil || !called || out.Winner != "A" {
		t.Fatalf("unexpected func adapter result %+v %v", out, err)
	}
}
