package telemetry

import (
	"context"
	"testing"

	"github.com/blaisecz/habit-tracker/internal/config"
)

func TestInitTracer_UnconfiguredIsNoop(t *testing.T) {
	cfg := &config.Config{LangfuseBaseURL: "https://cloud.langfuse.com"}

	shutdown, err := InitTracer(context.Background(), cfg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("noop shutdown returned %v", err)
	}
}

func TestTracesEndpoint(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://cloud.langfuse.com", "https://cloud.langfuse.com/api/public/otel/v1/traces"},
		{"https://cloud.langfuse.com/", "https://cloud.langfuse.com/api/public/otel/v1/traces"},
	}

	for _, tt := range tests {
		if got := TracesEndpoint(tt.base); got != tt.want {
			t.Errorf("TracesEndpoint(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
