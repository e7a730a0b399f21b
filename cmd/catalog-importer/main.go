package main

import (
	"context"
	"flag"
	"os"

	"github.com/louisbranch/levelup/internal/platform/cmd"
	"github.com/louisbranch/levelup/internal/platform/config"
	catalogimporter "github.com/louisbranch/levelup/internal/tools/importer/content/daggerheart/v1"
)

func main() {
	cfg, err := catalogimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	err = cmd.RunWithTelemetry(context.Background(), cmd.ServiceCatalogImporter, func(ctx context.Context) error {
		return catalogimporter.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
