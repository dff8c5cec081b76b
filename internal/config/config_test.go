package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.InputDir = "/photos/incoming"
	cfg.OutputDir = "/site/images/solstice"
	cfg.Event = EventSolstice
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxWidth != 1920 {
		t.Errorf("MaxWidth: got %d, want 1920", cfg.MaxWidth)
	}
	if cfg.Quality != 82 {
		t.Errorf("Quality: got %d, want 82", cfg.Quality)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode: got %q, want %q", cfg.ColorMode, ColorAuto)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing input", func(c *Config) { c.InputDir = "" }, "--input"},
		{"missing output", func(c *Config) { c.OutputDir = "" }, "--output"},
		{"missing event", func(c *Config) { c.Event = "" }, "--event"},
		{"unknown event", func(c *Config) { c.Event = "birthday" }, "invalid event"},
		{"quality zero", func(c *Config) { c.Quality = 0 }, "quality"},
		{"quality 150", func(c *Config) { c.Quality = 150 }, "quality"},
		{"quality 101", func(c *Config) { c.Quality = 101 }, "quality"},
		{"quality bounds low", func(c *Config) { c.Quality = 1 }, ""},
		{"quality bounds high", func(c *Config) { c.Quality = 100 }, ""},
		{"width zero", func(c *Config) { c.MaxWidth = 0 }, "width"},
		{"width negative", func(c *Config) { c.MaxWidth = -10 }, "width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate: unexpected error %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate: got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseEventLabel(t *testing.T) {
	tests := []struct {
		in   string
		want EventLabel
		ok   bool
	}{
		{"solstice", EventSolstice, true},
		{"equinox", EventEquinox, true},
		{"winter-solstice", EventWinterSolstice, true},
		{"summer-solstice", EventSummerSolstice, true},
		{"spring-equinox", EventSpringEquinox, true},
		{"fall-equinox", EventFallEquinox, true},
		{"SOLSTICE", EventSolstice, true},
		{"  equinox  ", EventEquinox, true},
		{"birthday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseEventLabel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseEventLabel(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/raw", "/photos/raw"},
		{"single trailing slash", "/photos/raw/", "/photos/raw"},
		{"multiple trailing slashes", "/photos/raw///", "/photos/raw"},
		{"root path", "/", "/"},
		{"relative path", "output", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidatePaths(t *testing.T) {
	cfg := validConfig()
	tests := []struct {
		name    string
		in, out string
		wantErr bool
	}{
		{"disjoint", "/photos/raw", "/site/images", false},
		{"output equals input", "/photos/raw", "/photos/raw", true},
		{"output inside input", "/photos/raw", "/photos/raw/out", true},
		{"input inside output", "/site/images/raw", "/site/images", false},
		{"shared prefix not parent", "/photos/raw", "/photos/rawest", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.ValidatePaths(tt.in, tt.out)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) = %v, wantErr %v", tt.in, tt.out, err, tt.wantErr)
			}
		})
	}
}

func TestEventValue_Set(t *testing.T) {
	var label EventLabel
	v := eventValue{&label}
	if err := v.Set("fall-equinox"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if label != EventFallEquinox {
		t.Errorf("got %q, want %q", label, EventFallEquinox)
	}
	if err := v.Set("halloween"); err == nil {
		t.Error("Set accepted an unknown event label")
	}
}
