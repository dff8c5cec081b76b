// Package pipeline orchestrates photo discovery, per-file processing, and
// batch summary reporting.
//
// The run is strictly sequential: each photo is timestamped, renamed,
// transcoded, and backed up before the next one starts. A single photo's
// failure is logged and counted but never stops the batch; the summary is
// printed unconditionally.
package pipeline
