package main

import (
	"context"
	"github.com/joho/godotenv"
	"gitlab.com/ignitionrobotics/billing/paystack/internal/cli"
	"gitlab.com/ignitionrobotics/billing/paystack/internal/conf"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/client"
	"io"
	"log"
	"os"
)

// main prepares the config and runs the paystack command line tool.
func main() {
	logger := log.New(os.Stderr, "[Paystack] ", log.LstdFlags|log.Lmsgprefix)

	// Load variables from a .env file, if any.
	_ = godotenv.Load(".env")

	factory := func() (api.Paystack, error) {
		var cfg conf.Config
		if err := cfg.Parse(); err != nil {
			return nil, err
		}
		l := log.New(io.Discard, "", log.LstdFlags)
		if cfg.Verbose {
			l = logger
		}
		return client.NewClientWithConfig(cfg.Paystack, l, nil), nil
	}

	root := cli.NewRootCommand(factory, os.Stdout)
	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Println(cli.FormatError(err))
		os.Exit(cli.ExitCode(err))
	}
}
