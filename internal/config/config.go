// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. All defaults match the legacy optimize_photos script for parity.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// EventLabel is the gallery event name used as the output filename prefix.
// Only the labels below are accepted; anything else is a validation error.
type EventLabel string

const (
	EventSolstice       EventLabel = "solstice"
	EventEquinox        EventLabel = "equinox"
	EventWinterSolstice EventLabel = "winter-solstice"
	EventSummerSolstice EventLabel = "summer-solstice"
	EventSpringEquinox  EventLabel = "spring-equinox"
	EventFallEquinox    EventLabel = "fall-equinox"
)

// EventLabels lists the accepted --event values in help/error display order.
var EventLabels = []EventLabel{
	EventSolstice,
	EventEquinox,
	EventWinterSolstice,
	EventSummerSolstice,
	EventSpringEquinox,
	EventFallEquinox,
}

// ParseEventLabel matches s (case-insensitive, trimmed) against the accepted
// event labels.
func ParseEventLabel(s string) (EventLabel, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, e := range EventLabels {
		if string(e) == s {
			return e, true
		}
	}
	return "", false
}

func eventLabelList() string {
	parts := make([]string, len(EventLabels))
	for i, e := range EventLabels {
		parts[i] = string(e)
	}
	return strings.Join(parts, ", ")
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths.
	InputDir  string // Source directory with photos (must exist).
	OutputDir string // Destination for optimized JPEGs (created if missing).

	// Naming.
	Event EventLabel // Filename prefix; one of EventLabels.

	// Transcoding.
	MaxWidth int // Default: 1920. Photos wider than this are downscaled.
	Quality  int // Default: 82. JPEG quality, 1-100.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// optimize_photos script. Used as the base before [ParseFlags] applies CLI
// overrides.
func DefaultConfig() Config {
	return Config{
		MaxWidth:  1920,
		Quality:   82,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks required paths, event membership, and numeric ranges.
// It runs before any directory is created, so a bad --quality or --event
// never touches the filesystem.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("--input is required")
	}
	if c.OutputDir == "" {
		return errors.New("--output is required")
	}
	if c.Event == "" {
		return fmt.Errorf("--event is required (use one of: %s)", eventLabelList())
	}
	if _, ok := ParseEventLabel(string(c.Event)); !ok {
		return fmt.Errorf("invalid event %q (use one of: %s)", c.Event, eventLabelList())
	}
	if c.MaxWidth < 1 {
		return fmt.Errorf("width must be a positive pixel count (got %d)", c.MaxWidth)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100 (got %d)", c.Quality)
	}
	return nil
}

// ValidatePaths ensures the output directory is not the input directory or
// inside it. Optimized files and the _originals backup directory would
// otherwise land among the photos being read. Both arguments must be
// absolute paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
