package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sparkcalc/app"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := app.ConfigFromEnv(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var script string
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Tick rate (window TPS or headless ticker).")
	flag.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Window zoom factor.")
	flag.StringVar(&script, "script", "", `Keys typed in headless mode, one per tick (\n Enter, \b Backspace, \e Escape).`)
	flag.Parse()

	if script != "" {
		cfg.Script = app.DecodeScript(script)
	}
	if cfg.Hz <= 0 || cfg.Scale <= 0 {
		fmt.Fprintln(os.Stderr, "hz and scale must be positive")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
