// Package naming derives deterministic, collision-free output filenames from
// an event label and a capture timestamp.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// timeLayout is the timestamp portion of an output filename.
const timeLayout = "2006-01-02-1504"

// Filename returns the canonical gallery name for one photo:
// <event>-YYYY-MM-DD-HHMM.jpg.
func Filename(event string, t time.Time) string {
	return fmt.Sprintf("%s-%s.jpg", event, t.Format(timeLayout))
}

// Unique returns name if exists reports it unclaimed, otherwise the first
// "-N" suffixed variant (inserted before the extension) that is unclaimed,
// with N counting up from 1. Existence is rechecked on every attempt rather
// than reserved ahead, so successive calls against a live directory assign
// strictly increasing suffixes.
func Unique(name string, exists func(string) bool) string {
	if !exists(name) {
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if !exists(candidate) {
			return candidate
		}
	}
}

// OutputPath joins a collision-free filename for event and t onto outputDir,
// consulting the filesystem for already-present files.
func OutputPath(outputDir, event string, t time.Time) string {
	name := Unique(Filename(event, t), func(candidate string) bool {
		_, err := os.Stat(filepath.Join(outputDir, candidate))
		return err == nil
	})
	return filepath.Join(outputDir, name)
}
