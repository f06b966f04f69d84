package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by ConfigFromEnv. A .env file in the working
// directory is loaded into the environment at startup.
const (
	EnvHeadless = "SPARKCALC_HEADLESS"
	EnvHz       = "SPARKCALC_HZ"
	EnvTicks    = "SPARKCALC_TICKS"
	EnvScale    = "SPARKCALC_SCALE"
	EnvScript   = "SPARKCALC_SCRIPT"
)

// Config selects how the calculator is hosted.
type Config struct {
	// Headless runs without a window; Ticks > 0 stops after that many ticks.
	Headless bool
	Hz       int
	Ticks    uint64

	// Scale is the window zoom factor.
	Scale float64

	// Script is typed into the keyboard in headless mode, one key per tick.
	// See DecodeScript for the escapes it accepts.
	Script string
}

func DefaultConfig() Config {
	return Config{Hz: 60, Scale: 2}
}

// ConfigFromEnv overlays the SPARKCALC_* variables on DefaultConfig.
// Every malformed variable is reported; the others still apply.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if v := getenv(EnvHeadless); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvHeadless, err))
		} else {
			cfg.Headless = b
		}
	}
	if v := getenv(EnvHz); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvHz, err))
		case n <= 0:
			errs = append(errs, fmt.Errorf("%s: must be positive, got %d", EnvHz, n))
		default:
			cfg.Hz = n
		}
	}
	if v := getenv(EnvTicks); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTicks, err))
		} else {
			cfg.Ticks = n
		}
	}
	if v := getenv(EnvScale); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvScale, err))
		case f <= 0:
			errs = append(errs, fmt.Errorf("%s: must be positive, got %v", EnvScale, f))
		default:
			cfg.Scale = f
		}
	}
	if v := getenv(EnvScript); v != "" {
		cfg.Script = DecodeScript(v)
	}

	return cfg, errors.Join(errs...)
}

var scriptEscapes = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\b`, "\b",
	`\e`, "\x1b",
)

// DecodeScript expands the escapes usable in a key script: \n is Enter,
// \b is Backspace, \e is Escape and \\ is a backslash.
func DecodeScript(s string) string {
	return scriptEscapes.Replace(s)
}
