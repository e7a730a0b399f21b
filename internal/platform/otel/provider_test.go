package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/levelup/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("FRACTURING_SPACE_OTEL_ENDPOINT", "")
	t.Setenv("FRACTURING_SPACE_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("FRACTURING_SPACE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("FRACTURING_SPACE_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export happens.
	t.Setenv("FRACTURING_SPACE_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("FRACTURING_SPACE_OTEL_ENABLED", "")
	t.Setenv("FRACTURING_SPACE_OTEL_SAMPLE_RATIO", "0.5")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsInvalidSampleRatio(t *testing.T) {
	t.Setenv("FRACTURING_SPACE_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("FRACTURING_SPACE_OTEL_ENABLED", "")
	t.Setenv("FRACTURING_SPACE_OTEL_SAMPLE_RATIO", "2")

	if _, err := otel.Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected sample ratio error")
	}
}

func TestSetup_RejectsUnparsableEnv(t *testing.T) {
	t.Setenv("FRACTURING_SPACE_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("FRACTURING_SPACE_OTEL_SAMPLE_RATIO", "half")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestTracerStartsSpansWithoutProvider(t *testing.T) {
	_, span := otel.Tracer().Start(context.Background(), "noop")
	span.End()
}
