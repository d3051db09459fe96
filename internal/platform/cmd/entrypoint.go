// Package cmd holds the shared startup path of every command.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/legend/internal/platform/config"
	"github.com/louisbranch/legend/internal/platform/otel"
)

const telemetryShutdownTimeout = 5 * time.Second

// Service names, used for log prefixes and as the traced service name.
const (
	ServiceExplain       = "explain"
	ServiceContentImport = "content-importer"
)

// Parse loads environment defaults into cfg, lets bind register flags that
// default to those values, and then parses args.
func Parse[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// LogPrefix returns the log prefix of a service, for example "[EXPLAIN] ".
func LogPrefix(service string) string {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(service), "-", "_"))
	return "[" + name + "] "
}

// RunWithTelemetry runs a command under the service's tracer provider and
// flushes it once run returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
