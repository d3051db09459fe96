package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/legend/internal/platform/otel"
)

func TestConfigActive(t *testing.T) {
	tests := []struct {
		cfg  otel.Config
		want bool
	}{
		{cfg: otel.Config{Enabled: true}, want: false},
		{cfg: otel.Config{Enabled: false, Endpoint: "http://localhost:4318"}, want: false},
		{cfg: otel.Config{Enabled: true, Endpoint: "http://localhost:4318"}, want: true},
	}
	for _, tt := range tests {
		if got := tt.cfg.Active(); got != tt.want {
			t.Fatalf("Active(%+v) = %v, want %v", tt.cfg, got, tt.want)
		}
	}
}

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("LEGEND_OTEL_ENDPOINT", "")
	t.Setenv("LEGEND_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "explain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("LEGEND_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("LEGEND_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "explain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupRejectsInvalidFlag(t *testing.T) {
	t.Setenv("LEGEND_OTEL_ENABLED", "maybe")
	if _, err := otel.Setup(context.Background(), "explain"); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	t.Setenv("LEGEND_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("LEGEND_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "explain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
