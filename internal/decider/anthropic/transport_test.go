package anthropic

import (
	"net/http"
	"testing"
	"time"
)

func TestResolveHTTPClient(t *testing.T) {
	custom := &http.Client{}
	if resolveHTTPClient(custom, 0) != custom {
		t.Fatalf("expected custom client to be used")
	}
	c, ok := resolveHTTPClient(nil, 0).(*http.Client)
	if !ok || c.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout client, got %+v", c)
	}
	c, _ = resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	if c.Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", c.Timeout)
	}
}

func TestDefaults(t *testing.T) {
	if normalizeBaseURL("") != defaultBaseURL {
		t.Fatalf("expected default base url")
	}
	if normalizeBaseURL("http://x/v1/") != "http://x/v1" {
		t.Fatalf("expected trailing slash trimmed")
	}
	if resolveModel("") != defaultModel || resolveModel("m") != "m" {
		t.Fatalf("unexpected model resolution")
	}
	if resolveMaxTokens(0) != defaultMaxTokens || resolveMaxTokens(42) != 42 {
		t.Fatalf("unexpected max tokens resolution")
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	cases := map[string]time.Duration{
		"":                              0,
		"5":                             5 * time.Second,
		"-3":                            0,
		"soon":                          0,
		"Thu, 20 Mar 2025 12:00:30 GMT": 30 * time.Second,
		"Thu, 20 Mar 2025 11:00:00 GMT": 0,
	}
	for raw, want := range cases {
		if got := parseRetryAfter(raw, now); got != want {
			t.Fatalf("%q: expected %s, got %s", raw, want, got)
		}
	}
}
