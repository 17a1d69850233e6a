package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestWithCommon(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		version  string
		wantKeys []string
	}{
		{name: "both", service: "mascot-madness", version: "dev", wantKeys: []string{"existing", FieldService, FieldVersion}},
		{name: "service only", service: "mascot-madness", wantKeys: []string{"existing", FieldService}},
		{name: "neither", wantKeys: []string{"existing"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			attrs := WithCommon([]slog.Attr{slog.String("existing", "x")}, tc.service, tc.version)
			if len(attrs) != len(tc.wantKeys) {
				t.Fatalf("expected %d attrs, got %+v", len(tc.wantKeys), attrs)
			}
			for i, key := range tc.wantKeys {
				if attrs[i].Key != key {
					t.Fatalf("attr %d: expected key %q, got %q", i, key, attrs[i].Key)
				}
			}
		})
	}
}

func TestErrAttr(t *testing.T) {
	err := errors.New("boom")
	attr := Err(err)
	if attr.Key != FieldError || attr.Value.Any() != err {
		t.Fatalf("unexpected attr %+v", attr)
	}
}
