package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/status-tracker/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("STATUS_TRACKER_OTEL_ENDPOINT", "")
	t.Setenv("STATUS_TRACKER_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("STATUS_TRACKER_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("STATUS_TRACKER_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupRejectsMalformedToggle(t *testing.T) {
	t.Setenv("STATUS_TRACKER_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("STATUS_TRACKER_OTEL_ENABLED", "sometimes")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err == nil {
		t.Fatal("expected error for malformed toggle")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Use a non-routable address so no actual export happens.
	t.Setenv("STATUS_TRACKER_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("STATUS_TRACKER_OTEL_ENABLED", "true")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Shutdown should flush cleanly even though the endpoint is unreachable.
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
