package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	explaincmd "github.com/louisbranch/legend/internal/cmd/explain"
	entrypoint "github.com/louisbranch/legend/internal/platform/cmd"
)

func main() {
	cfg, err := explaincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceExplain))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := explaincmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("explain: %v", err)
	}
}
