// Package config reads process-level settings for the phpass tool from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hasbyte1/go-phpass/phpass"
)

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// Load merges the given .env files (".env" when none are given) into the
// environment. Variables already set win. Missing files are not an error.
func Load(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load env file: %w", err)
	}
	return nil
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("PHPASS_LOG_LEVEL")
	if logLevel == "" {
		return Warn
	}
	return LogLevel(strings.ToLower(logLevel))
}

func IsDebug() bool {
	return os.Getenv("PHPASS_DEBUG") == "true"
}

// GetCost returns PHPASS_COST, or phpass.DefaultCost when unset. Range
// checking is left to phpass.New.
func GetCost() (int, error) {
	raw := os.Getenv("PHPASS_COST")
	if raw == "" {
		return phpass.DefaultCost, nil
	}
	cost, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: PHPASS_COST %q is not an integer", raw)
	}
	return cost, nil
}

func IsPortable() bool {
	portable, _ := strconv.ParseBool(os.Getenv("PHPASS_PORTABLE"))
	return portable
}

// HasherOptions returns phpass.DefaultOptions adjusted by the environment.
func HasherOptions() (phpass.Options, error) {
	opts := phpass.DefaultOptions()
	cost, err := GetCost()
	if err != nil {
		return opts, err
	}
	opts.Cost = cost
	opts.Portable = IsPortable()
	return opts, nil
}
