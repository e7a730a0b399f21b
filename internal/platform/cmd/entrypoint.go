package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/louisbranch/levelup/internal/platform/config"
	"github.com/louisbranch/levelup/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// Service identifiers for command startup telemetry and CLI naming consistency.
const (
	ServiceLevelUp         = "levelup"
	ServiceCatalogImporter = "catalog-importer"
)

// ErrUnknownSubcommand is returned by Dispatch for names it does not know.
var ErrUnknownSubcommand = errors.New("unknown subcommand")

// RunOptions controls shared entrypoint behavior for service commands.
type RunOptions struct {
	// ShutdownTimeout sets the timeout used when stopping telemetry.
	ShutdownTimeout time.Duration
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// Subcommand is one named action of a multi-command binary.
type Subcommand struct {
	Name  string
	Usage string
	Run   func(ctx context.Context, args []string) error
}

// Dispatch runs the subcommand named by args[0] with the remaining args.
func Dispatch(ctx context.Context, args []string, subcommands []Subcommand) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("subcommand is required: %s", Usage(subcommands))
	}
	for _, sub := range subcommands {
		if sub.Name == args[0] {
			if sub.Run == nil {
				return fmt.Errorf("subcommand %s has no run function", sub.Name)
			}
			return sub.Run(ctx, args[1:])
		}
	}
	return fmt.Errorf("%w %q: %s", ErrUnknownSubcommand, args[0], Usage(subcommands))
}

// Usage lists subcommand names in alphabetical order.
func Usage(subcommands []Subcommand) string {
	names := make([]string, 0, len(subcommands))
	for _, sub := range subcommands {
		names = append(names, sub.Name)
	}
	sort.Strings(names)
	return "want one of " + strings.Join(names, ", ")
}

// RunWithTelemetry configures observability and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions configures observability and executes a service run loop.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
