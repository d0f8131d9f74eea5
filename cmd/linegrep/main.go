package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/docker/go-units"
	"github.com/joho/godotenv"

	"github.com/ChamsBouzaiene/linegrep/internal/config"
	"github.com/ChamsBouzaiene/linegrep/internal/fsys"
	"github.com/ChamsBouzaiene/linegrep/internal/search"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := run(os.Stdout, os.Args[1:], fsys.NewOSFileSystem()); err != nil {
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprintf(os.Stderr, "linegrep: %v\n", err)
			os.Exit(2)
		}
		log.Fatalf("linegrep: %v", err)
	}
}

// run executes a single search. Matching lines go to out; diagnostics go to
// the logger so stdout stays clean for piping.
func run(out io.Writer, args []string, fs fsys.FileSystem) error {
	flags := flag.NewFlagSet("linegrep", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	lineNumbers := flags.Bool("n", false, "Prefix each match with its line number")
	verbose := flags.Bool("v", false, "Log search diagnostics to stderr")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", config.ErrUsage, err)
	}

	cfg, err := config.Resolve(flags.Args(), loadPreferences())
	if err != nil {
		return err
	}

	// Flags only force settings on; their absence falls back to the
	// preferences file.
	cfg.LineNumbers = cfg.LineNumbers || *lineNumbers
	cfg.Verbose = *verbose

	if cfg.Verbose {
		log.Printf("Searching for %q", cfg.Query)
		log.Printf("In file %s", cfg.Filename)
		if cfg.IgnoreCase {
			log.Printf("Case-insensitive matching enabled")
		}
	}

	corpus, err := readCorpus(fs, cfg.Filename)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		log.Printf("Read %s from %s", units.HumanSize(float64(len(corpus))), cfg.Filename)
	}

	results := search.Search(cfg.Query, corpus, cfg.IgnoreCase)
	if len(results) == 0 {
		log.Printf("No results found for %q", cfg.Query)
		return nil
	}

	for _, r := range results {
		if cfg.LineNumbers {
			fmt.Fprintf(out, "%d:%s\n", r.LineNumber, r.Line)
		} else {
			fmt.Fprintln(out, r.Line)
		}
	}

	return nil
}

// readCorpus loads the whole target file into memory as one string.
func readCorpus(fs fsys.FileSystem, path string) (string, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a file", path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), nil
}

// loadPreferences reads the user's preferences file. Failures are downgraded
// to warnings so a broken config never blocks a search.
func loadPreferences() *config.Preferences {
	manager, err := config.NewManager()
	if err != nil {
		log.Printf("⚠️  Failed to locate user config: %v (using defaults)", err)
		return nil
	}

	prefs, err := manager.Load()
	if err != nil {
		log.Printf("⚠️  Failed to load user config: %v (using defaults)", err)
		return nil
	}

	return prefs
}
