package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golangdaddy/cruise/pkg/config"
	"github.com/golangdaddy/cruise/pkg/game"
	"github.com/golangdaddy/cruise/pkg/logging"
	"github.com/spf13/pflag"
)

func main() {
	flags := config.Flags("cruise")
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

	logger.Info().
		Float64("speed", cfg.Motion.Speed).
		Float64("acceleration", cfg.Motion.Acceleration).
		Float64("deceleration", cfg.Motion.Deceleration).
		Float64("segmentLength", cfg.World.SegmentLength).
		Float64("recycleDistance", cfg.World.RecycleDistance).
		Msg("configuration loaded")

	if err := game.Run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("game stopped")
		closer.Close()
		os.Exit(1)
	}
}
