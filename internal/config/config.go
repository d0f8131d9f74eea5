package config

import (
	"errors"
	"fmt"
	"os"
)

// IgnoreCaseEnv is the environment variable that toggles case-insensitive
// matching. Only the value "1" turns it on.
const IgnoreCaseEnv = "LINEGREP_IGNORE_CASE"

// ErrUsage marks command-line usage errors so the caller can exit with a
// distinct code from runtime failures.
var ErrUsage = errors.New("usage: linegrep [-n] [-v] <query> <file>")

// Config holds the effective settings for a single search run.
type Config struct {
	Query       string
	Filename    string
	IgnoreCase  bool
	LineNumbers bool
	Verbose     bool
}

// Resolve builds the effective configuration from the positional arguments.
// The preferences file (may be nil) supplies defaults; environment variables
// always win over it. If LINEGREP_IGNORE_CASE is set at all, its value
// decides case sensitivity regardless of the preferences.
func Resolve(args []string, prefs *Preferences) (*Config, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w (need a query and a file, got %d arguments)", ErrUsage, len(args))
	}

	cfg := &Config{
		Query:    args[0],
		Filename: args[1],
	}

	if prefs != nil {
		cfg.IgnoreCase = prefs.IgnoreCase
		cfg.LineNumbers = prefs.LineNumbers
	}

	if val, ok := os.LookupEnv(IgnoreCaseEnv); ok {
		cfg.IgnoreCase = val == "1"
	}

	return cfg, nil
}
