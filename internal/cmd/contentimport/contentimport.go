// Package contentimport wires the content importer into a command.
package contentimport

import (
	"context"
	"flag"
	"io"

	entrypoint "github.com/louisbranch/legend/internal/platform/cmd"
	"github.com/louisbranch/legend/internal/platform/config"
	contentimporter "github.com/louisbranch/legend/internal/tools/importer/content/v1"
)

// Config holds content import command configuration.
type Config struct {
	DBPath string `env:"LEGEND_CONTENT_DB_PATH" envDefault:"data/legend-content.db"`
	Import contentimporter.Config
}

// ParseConfig parses environment and flags into a Config. The environment
// supplies the default database path.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	importCfg, err := contentimporter.ParseConfig(fs, append([]string{"-db-path", cfg.DBPath}, args...))
	if err != nil {
		return Config{}, err
	}
	cfg.Import = importCfg
	cfg.DBPath = importCfg.DBPath
	return cfg, nil
}

// Run imports content payloads into the content store.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceContentImport, func(ctx context.Context) error {
		return contentimporter.Run(ctx, cfg.Import, out)
	})
}
