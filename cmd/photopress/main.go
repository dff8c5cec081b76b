// Command photopress is the CLI entrypoint for the Photopress batch
// photo optimizer.
//
// It parses flags, validates configuration and paths, then runs the
// optimize pipeline: rename by capture time, resize, re-encode, and
// back up the originals.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/photopress/internal/config"
	"github.com/backmassage/photopress/internal/display"
	"github.com/backmassage/photopress/internal/logging"
	"github.com/backmassage/photopress/internal/pipeline"
)

// version is injected at build time via -ldflags. When built with plain
// "go build" it retains the default.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt. Once NewLogger succeeds, all output goes through
	// the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "photopress: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "photopress: %v\n", err)
		return 1
	}

	// Input must exist before anything is created on disk.
	fi, err := os.Stat(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "photopress: input directory does not exist: %s\n", cfg.InputDir)
		return 1
	}
	if !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "photopress: input path is not a directory: %s\n", cfg.InputDir)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "photopress: %v\n", err)
		return 1
	}
	defer log.Close()

	// All output goes through log from here on.
	display.PrintBanner()

	// Resolve and validate paths: output is created if needed, and must
	// not be inside input (prevents re-processing our own output).
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Cannot resolve input path: %s", cfg.InputDir)
		return 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", cfg.OutputDir)
		return 1
	}
	outputAbs, err := absPath(cfg.OutputDir)
	if err != nil {
		log.Error("Cannot resolve output path: %s", cfg.OutputDir)
		return 1
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		log.Error("%v", err)
		log.Error("Choose an output path outside: %s", cfg.InputDir)
		return 1
	}

	log.Info("=== Photopress v%s ===", version)
	log.Info("In:    %s", cfg.InputDir)
	log.Info("Out:   %s", cfg.OutputDir)
	log.Info("Event: %s", cfg.Event)
	log.Info("")

	pipeline.Run(&cfg, log)

	// Per-file failures are reported in the summary but never fail the
	// run; a completed batch exits 0.
	return 0
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
