package pipeline

import (
	"io"
	"os"
	"path/filepath"

	"github.com/backmassage/photopress/internal/config"
	"github.com/backmassage/photopress/internal/display"
	"github.com/backmassage/photopress/internal/exifdata"
	"github.com/backmassage/photopress/internal/naming"
	"github.com/backmassage/photopress/internal/transcode"
)

// Logger is the minimal logging interface the pipeline needs. Defined here
// (rather than importing the logging package) so tests can substitute a
// silent implementation.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// BackupDirFor returns the sibling backup directory for outputDir:
// <parent>/<name>_originals.
func BackupDirFor(outputDir string) string {
	dir := filepath.Clean(outputDir)
	return filepath.Join(filepath.Dir(dir), filepath.Base(dir)+"_originals")
}

// Run is the top-level batch entry point. It discovers photos, creates the
// output and backup directories, processes each file sequentially, and
// returns aggregate stats. The summary is logged even when every file fails.
func Run(cfg *config.Config, log Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error("Photo discovery failed: %v", err)
		return stats
	}
	stats.Total = len(files)

	backupDir := BackupDirFor(cfg.OutputDir)
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory %s: %v", cfg.OutputDir, err)
		return stats
	}
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		log.Error("Cannot create backup directory %s: %v", backupDir, err)
		return stats
	}

	logBatchHeader(cfg, log, &stats, backupDir)

	opts := transcode.Options{MaxWidth: cfg.MaxWidth, Quality: cfg.Quality}
	for i, path := range files {
		stats.Current = i + 1
		processPhoto(cfg, log, path, backupDir, opts, &stats)
	}

	logSummary(log, &stats)
	return stats
}

// processPhoto handles one photo: timestamp → output name → transcode →
// backup copy → stats. Every failure mode logs, counts, and returns, so the
// batch loop always advances.
func processPhoto(
	cfg *config.Config,
	log Logger,
	path string,
	backupDir string,
	opts transcode.Options,
	stats *RunStats,
) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	fi, err := os.Stat(path)
	if err != nil {
		log.Error("File not found: %s", path)
		stats.Failed++
		return
	}

	taken, fromEXIF := exifdata.CaptureTime(path)
	if !fromEXIF {
		log.Warn("No EXIF timestamp in %s, using file modification time", basename)
	}

	outputPath := naming.OutputPath(cfg.OutputDir, string(cfg.Event), taken)
	log.Info("  -> %s", filepath.Base(outputPath))

	if err := transcode.File(path, outputPath, opts); err != nil {
		log.Error("Optimize failed for %s: %v", basename, err)
		stats.Failed++
		return
	}

	optInfo, err := os.Stat(outputPath)
	if err != nil {
		log.Error("Output vanished after write: %s", outputPath)
		stats.Failed++
		return
	}

	// A lost backup would defeat the point of keeping originals, so a copy
	// failure counts the file as failed. The optimized output is kept.
	if err := copyOriginal(path, filepath.Join(backupDir, basename)); err != nil {
		log.Error("Backup copy failed for %s: %v", basename, err)
		stats.Failed++
		return
	}

	stats.TotalOriginalBytes += fi.Size()
	stats.TotalOptimizedBytes += optInfo.Size()
	stats.Processed++

	ratio := int64(100)
	if fi.Size() > 0 {
		ratio = optInfo.Size() * 100 / fi.Size()
	}
	log.Success("%s -> %s (%d%% of original)",
		display.FormatBytes(fi.Size()), display.FormatBytes(optInfo.Size()), ratio)
}

// copyOriginal writes a byte-for-byte copy of src to dst and carries the
// modification time over so the backup keeps the original's timestamp.
func copyOriginal(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if fi, err := os.Stat(src); err == nil {
		// Best-effort: a failed Chtimes still leaves a full-fidelity copy.
		_ = os.Chtimes(dst, fi.ModTime(), fi.ModTime())
	}
	return nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log Logger, stats *RunStats, backupDir string) {
	if stats.Total == 0 {
		log.Warn("No photo files found in %s", cfg.InputDir)
		return
	}
	log.Info("Found %d photos", stats.Total)
	log.Info("Output: %s", cfg.OutputDir)
	log.Info("Backup: %s", backupDir)
	log.Info("Event: %s", cfg.Event)
	log.Info("Max width: %dpx, quality: %d", cfg.MaxWidth, cfg.Quality)
	log.Info("")
}

func logSummary(log Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d optimized, %d failed", stats.Processed, stats.Failed)
	log.Info("  Total files processed: %d", stats.Current)

	if stats.TotalOriginalBytes == 0 {
		log.Info("  Total space saved: n/a (no photos optimized)")
		return
	}

	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Success("  Total space saved: %s (original %s -> optimized %s, %s reduction)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalOriginalBytes),
			display.FormatBytes(stats.TotalOptimizedBytes),
			display.FormatPercent(stats.ReductionPercent()))
	} else {
		log.Warn("  Total space saved: -%s (overall output is larger)",
			display.FormatBytes(-saved))
	}
}
