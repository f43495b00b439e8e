package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"access-log-stats/internal/app"
	"access-log-stats/internal/shared/configs"
	"access-log-stats/internal/shared/svcerrors"

	"github.com/spf13/pflag"
)

const usage = `Usage: accesslogstats [flags] [input [output]]

Reads an access log in Combined Log Format and writes a traffic summary.
Positional arguments override --input and --output.

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("accesslogstats", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configs.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return svcerrors.ExitOK
		}
		return svcerrors.ExitInvalidArgument
	}

	// Positional arguments
	positional := fs.Args()
	if len(positional) > 2 {
		fmt.Fprintf(stderr, "accesslogstats: too many arguments: %v\n", positional)
		fs.Usage()
		return svcerrors.ExitInvalidArgument
	}
	for i, name := range []string{"input", "output"} {
		if i < len(positional) {
			if err := fs.Set(name, positional[i]); err != nil {
				fmt.Fprintf(stderr, "accesslogstats: %v\n", err)
				return svcerrors.ExitInvalidArgument
			}
		}
	}

	// Load configuration
	configPath, _ := fs.GetString("config")
	cfg, err := configs.LoadConfig(configPath, fs)
	if err != nil {
		fmt.Fprintf(stderr, "accesslogstats: failed to load config: %v\n", err)
		return svcerrors.ExitInvalidArgument
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "accesslogstats: failed to initialize app: %v\n", err)
		return svcerrors.ExitCodeOf(err)
	}

	if _, err := application.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "accesslogstats: %v\n", err)
		return svcerrors.ExitCodeOf(err)
	}
	return svcerrors.ExitOK
}
