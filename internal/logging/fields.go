package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRunID      = "run_id"
	FieldDecider    = "decider"
	FieldDivision   = "division"
	FieldPhase      = "phase"
	FieldRound      = "round"
	FieldTeamA      = "team_a"
	FieldTeamB      = "team_b"
	FieldWinner     = "winner"
	FieldConfidence = "confidence"
	FieldCount      = "count"
	FieldPath       = "path"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
