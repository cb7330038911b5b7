package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"spiderescape/internal/game"
)

func main() {
	levelPath := flag.String("level", "", "Path to a level YAML file. Empty uses the built-in nest.")
	debug := flag.Bool("debug", false, "Draw collision frames and the debug readout.")
	envFile := flag.String("env", ".env", "Optional dotenv file with SPIDER_* settings.")
	flag.Parse()

	// A missing .env is fine; anything else is worth reporting.
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", *envFile, err)
		os.Exit(1)
	}

	settings, err := game.LoadSettingsFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *levelPath != "" {
		settings.LevelPath = *levelPath
	}
	if *debug {
		settings.Debug = true
	}

	log := game.NewLogger(os.Stderr, settings.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.RunDesktop(ctx, settings, log); err != nil {
		log.Error("game exited", "err", err)
		stop()
		os.Exit(1)
	}
}
