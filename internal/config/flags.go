package config

// This file implements CLI flag parsing and help text.
// Override flags (--color/--no-color) are applied after Parse so Config
// defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, unknown event label).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("photopress", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var ov overrideFlags

	fs.StringVar(&cfg.InputDir, "input", "", "Source directory containing photos (required)")
	fs.StringVar(&cfg.InputDir, "i", "", "Same as --input")
	fs.StringVar(&cfg.OutputDir, "output", "", "Destination directory for optimized photos (required)")
	fs.StringVar(&cfg.OutputDir, "o", "", "Same as --output")
	fs.Var(&eventValue{&cfg.Event}, "event", "Event label for filename prefix (required)")
	fs.Var(&eventValue{&cfg.Event}, "e", "Same as --event")
	fs.IntVar(&cfg.MaxWidth, "width", cfg.MaxWidth, "Maximum output width in pixels")
	fs.IntVar(&cfg.MaxWidth, "w", cfg.MaxWidth, "Same as --width")
	fs.IntVar(&cfg.Quality, "quality", cfg.Quality, "JPEG quality 1-100")
	fs.IntVar(&cfg.Quality, "q", cfg.Quality, "Same as --quality")

	fs.BoolVar(&ov.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&ov.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&ov.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&ov.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&ov.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&ov.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if ov.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "photopress v"+version)
		os.Exit(0)
	}

	if ov.noColor {
		cfg.ColorMode = ColorNever
	} else if ov.forceColor {
		cfg.ColorMode = ColorAlways
	}

	cfg.InputDir = NormalizeDirArg(cfg.InputDir)
	cfg.OutputDir = NormalizeDirArg(cfg.OutputDir)
	return nil
}

// overrideFlags holds boolean flags that are applied after Parse.
// These either override a default (color mode) or trigger exit (showHelp, showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// eventValue adapts EventLabel to flag.Value so unknown labels fail at parse
// time with the accepted list in the message.
type eventValue struct{ p *EventLabel }

func (e *eventValue) String() string { return string(*e.p) }
func (e *eventValue) Set(s string) error {
	label, ok := ParseEventLabel(s)
	if !ok {
		return fmt.Errorf("invalid event %q (use one of: %s)", s, eventLabelList())
	}
	*e.p = label
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Photopress v" + version + " — gallery photo optimizer and renamer"},
		{"", ""},
		{"  photopress -i <input_dir> -o <output_dir> -e <event> [OPTIONS]", ""},
		{"", ""},
		{"Required", ""},
		{"  -i, --input <dir>", "Source directory containing photos"},
		{"  -o, --output <dir>", "Destination directory (created if missing)"},
		{"  -e, --event <label>", "Filename prefix: " + eventLabelList()},
		{"", ""},
		{"Output tuning", ""},
		{"  -w, --width <pixels>", "Maximum output width (default: 1920)"},
		{"  -q, --quality <1-100>", "JPEG quality (default: 82)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
