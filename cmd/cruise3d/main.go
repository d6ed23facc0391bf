package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golangdaddy/cruise/pkg/config"
	"github.com/golangdaddy/cruise/pkg/logging"
	"github.com/golangdaddy/cruise/pkg/rlview"
	"github.com/spf13/pflag"
)

func main() {
	flags := config.Flags("cruise3d")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	configDir, _ := flags.GetString("config")

	cfg, err := config.Load(configDir, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.Open(os.Stdout, cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	view, err := rlview.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("setting up view")
	}
	if err := view.Run(cfg); err != nil {
		logger.Error().Err(err).Msg("view stopped")
		closer.Close()
		os.Exit(1)
	}
}
