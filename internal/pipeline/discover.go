package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Supported photo file extensions (lowercase, with leading dot).
var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Discover lists photo files directly inside inputDir — no recursion — and
// returns their paths sorted lexicographically. Deterministic order makes
// collision-counter assignment reproducible across runs on the same input.
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if photoExtensions[ext] {
			files = append(files, filepath.Join(inputDir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
