// Package explain parses explain command flags and prints a value breakdown.
package explain

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/legend/internal/legend/breakdown"
	"github.com/louisbranch/legend/internal/legend/contribution"
	"github.com/louisbranch/legend/internal/legend/metadata"
	"github.com/louisbranch/legend/internal/legend/provider"
	"github.com/louisbranch/legend/internal/legend/registry"
	storagesqlite "github.com/louisbranch/legend/internal/legend/storage/sqlite"
	entrypoint "github.com/louisbranch/legend/internal/platform/cmd"
	"github.com/louisbranch/legend/internal/platform/config"
)

const tracerName = "github.com/louisbranch/legend/internal/cmd/explain"

// Config holds explain command configuration.
type Config struct {
	ContentDBPath string `env:"LEGEND_CONTENT_DB_PATH" envDefault:"data/legend-content.db"`
	Locale        string `env:"LEGEND_LOCALE" envDefault:"en"`
	MetadataPath  string
	SourcesPath   string
	Target        string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := entrypoint.Parse(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.ContentDBPath, "db-path", cfg.ContentDBPath, "content database path (empty skips content)")
		fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used to format amounts")
		fs.StringVar(&cfg.MetadataPath, "metadata", "", "session metadata file (.json or .yaml)")
		fs.StringVar(&cfg.SourcesPath, "sources", "-", "contribution sources JSON file, - for stdin")
		fs.StringVar(&cfg.Target, "target", "", "id of the value to explain")
	})
	if err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.MetadataPath) == "" {
		return Config{}, errors.New("metadata is required")
	}
	if strings.TrimSpace(cfg.Target) == "" {
		return Config{}, errors.New("target is required")
	}
	if _, err := config.ParseLocale(cfg.Locale); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads content, metadata and sources, then prints the breakdown of the
// target value to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceExplain, func(ctx context.Context) error {
		return explain(ctx, cfg, in, out)
	})
}

func explain(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	locale, err := config.ParseLocale(cfg.Locale)
	if err != nil {
		return err
	}

	regs, err := loadRegistries(ctx, cfg.ContentDBPath)
	if err != nil {
		return err
	}
	session, err := metadata.Load(cfg.MetadataPath)
	if err != nil {
		return err
	}
	p, err := provider.New(regs, session)
	if err != nil {
		return err
	}
	sources, err := readSources(cfg.SourcesPath, in)
	if err != nil {
		return err
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "breakdown.summarize",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("legend.target", cfg.Target),
			attribute.Int("legend.sources", len(sources)),
		),
	)
	defer span.End()

	engine := breakdown.New(breakdown.FromProvider(p), breakdown.WithLocale(locale))
	groups, err := engine.Summarize(cfg.Target, sources)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(
		attribute.Int("legend.groups", len(groups)),
		attribute.Int("legend.fallbacks", p.CachedFallbacks()),
	)
	log.Printf("explained %s from %d source(s)", cfg.Target, len(sources))
	return breakdown.Render(out, groups)
}

func loadRegistries(ctx context.Context, path string) (*registry.Registries, error) {
	if strings.TrimSpace(path) == "" {
		return registry.NewRegistries(), nil
	}
	store, err := storagesqlite.OpenContent(path)
	if err != nil {
		return nil, fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()
	regs, err := store.LoadRegistries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return regs, nil
}

func readSources(path string, in io.Reader) (contribution.SourceMap, error) {
	if path == "" || path == "-" {
		if in == nil {
			return nil, errors.New("sources input is required")
		}
		return contribution.DecodeSources(in)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sources: %w", err)
	}
	defer file.Close()
	return contribution.DecodeSources(file)
}
