package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	contentimportcmd "github.com/louisbranch/legend/internal/cmd/contentimport"
	entrypoint "github.com/louisbranch/legend/internal/platform/cmd"
	"github.com/louisbranch/legend/internal/platform/config"
)

func main() {
	cfg, err := contentimportcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceContentImport))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := contentimportcmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
