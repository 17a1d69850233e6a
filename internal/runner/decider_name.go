package runner

import "strings"

const (
	deciderAuto      = "auto"
	deciderMock      = "mock"
	deciderAnthropic = "anthropic"
)

// normalizeDeciderName maps configured spellings onto the known decider names.
// Used by the factory and by logs/metrics so one decider has one name.
func normalizeDeciderName(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", deciderAuto:
		return deciderAuto
	case deciderMock, "fixture", "offline":
		return deciderMock
	case deciderAnthropic, "claude", "live":
		return deciderAnthropic
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}
