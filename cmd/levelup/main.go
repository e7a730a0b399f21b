package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	levelupcmd "github.com/louisbranch/levelup/internal/cmd/levelup"
	"github.com/louisbranch/levelup/internal/platform/config"
)

func main() {
	cfg, err := levelupcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[LEVELUP] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := levelupcmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, levelupcmd.FormatError(err, cfg.Locale))
		stop()
		os.Exit(levelupcmd.ExitCode(err))
	}
}
