package explain

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/legend/internal/legend/registry"
	"github.com/louisbranch/legend/internal/legend/storage"
	storagesqlite "github.com/louisbranch/legend/internal/legend/storage/sqlite"
	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

const sessionJSON = `{
  "assets": {
    "land": {"label": "Land", "icon": "🗺️"},
    "slot": {"label": "Slot"},
    "passive": {"label": "Passive"}
  },
  "resources": {"gold": {"label": "Treasury"}}
}`

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("explain", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-metadata", "session.json", "-target", "gold"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ContentDBPath != "data/legend-content.db" {
		t.Fatalf("ContentDBPath = %q", cfg.ContentDBPath)
	}
	if cfg.Locale != "en" || cfg.SourcesPath != "-" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("LEGEND_CONTENT_DB_PATH", "env.db")
	t.Setenv("LEGEND_LOCALE", "de")
	fs := flag.NewFlagSet("explain", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-metadata", "m.yaml", "-target", "gold", "-locale", "fr"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ContentDBPath != "env.db" || cfg.Locale != "fr" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigRequiresMetadataAndTarget(t *testing.T) {
	if _, err := ParseConfig(flag.NewFlagSet("explain", flag.ContinueOnError), []string{"-target", "gold"}); err == nil {
		t.Fatal("expected metadata error")
	}
	if _, err := ParseConfig(flag.NewFlagSet("explain", flag.ContinueOnError), []string{"-metadata", "m.json"}); err == nil {
		t.Fatal("expected target error")
	}
	if _, err := ParseConfig(flag.NewFlagSet("explain", flag.ContinueOnError), []string{"-metadata", "m.json", "-target", "gold", "-locale", "??"}); err == nil {
		t.Fatal("expected locale error")
	}
}

func TestRunPrintsBreakdown(t *testing.T) {
	t.Setenv("LEGEND_OTEL_ENDPOINT", "")
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "content.db")
	store, err := storagesqlite.OpenContent(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	if err := store.PutResource(ctx, registry.ResourceDefinition{Key: "gold", Label: "Gold", Icon: "🪙"}); err != nil {
		t.Fatalf("put resource: %v", err)
	}
	if err := store.PutDefinition(ctx, storage.DomainBuildings, registry.Definition{ID: "farm", Name: "Farm", Icon: "🌾"}); err != nil {
		t.Fatalf("put building: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	metadataPath := filepath.Join(dir, "session.json")
	if err := os.WriteFile(metadataPath, []byte(sessionJSON), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	sources := `{"farm-1":{"amount":2,"meta":{"longevity":"ongoing","kind":"building","id":"farm"}},
"start":{"amount":10,"meta":{"longevity":"permanent","kind":"start","id":""}}}`

	var out bytes.Buffer
	cfg := Config{ContentDBPath: dbPath, Locale: "en", MetadataPath: metadataPath, SourcesPath: "-", Target: "gold"}
	if err := Run(ctx, cfg, strings.NewReader(sources), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Ongoing\n  🌾 Farm\n    +2\n    Ongoing as long as 🌾 Farm remains active\n" +
		"Permanent\n  [MISSING:start]\n    +10\n    Permanent\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunFailsOnUnknownTrigger(t *testing.T) {
	t.Setenv("LEGEND_OTEL_ENDPOINT", "")
	dir := t.TempDir()
	metadataPath := filepath.Join(dir, "session.json")
	if err := os.WriteFile(metadataPath, []byte(sessionJSON), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	sources := `{"x":{"amount":1,"meta":{"longevity":"ongoing","kind":"building","id":"farm","dependsOn":[{"type":"trigger","id":"ghost"}]}}}`

	cfg := Config{Locale: "en", MetadataPath: metadataPath, SourcesPath: "-", Target: "gold"}
	err := Run(context.Background(), cfg, strings.NewReader(sources), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.GetCode(err) != apperrors.CodeTriggerNotFound {
		t.Fatalf("err = %v", err)
	}
}

func TestRunRejectsMissingAssets(t *testing.T) {
	t.Setenv("LEGEND_OTEL_ENDPOINT", "")
	dir := t.TempDir()
	metadataPath := filepath.Join(dir, "session.yaml")
	if err := os.WriteFile(metadataPath, []byte("assets:\n  slot: {}\n  passive: {}\n"), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	cfg := Config{Locale: "en", MetadataPath: metadataPath, SourcesPath: "-", Target: "gold"}
	err := Run(context.Background(), cfg, strings.NewReader("{}"), nil)
	if err == nil || !strings.Contains(err.Error(), "assets.land") {
		t.Fatalf("err = %v", err)
	}
}
