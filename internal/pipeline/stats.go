package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total               int
	Current             int
	Processed           int
	Failed              int
	TotalOriginalBytes  int64
	TotalOptimizedBytes int64
}

// SpaceSaved returns the aggregate byte difference between originals and
// optimized outputs. Positive means outputs are smaller; negative means they grew.
func (s *RunStats) SpaceSaved() int64 {
	return s.TotalOriginalBytes - s.TotalOptimizedBytes
}

// ReductionPercent returns the relative size reduction as a percentage of the
// original bytes. A run with zero original bytes (everything failed, or an
// empty input) yields 0 rather than dividing by zero.
func (s *RunStats) ReductionPercent() float64 {
	if s.TotalOriginalBytes == 0 {
		return 0
	}
	return (1 - float64(s.TotalOptimizedBytes)/float64(s.TotalOriginalBytes)) * 100
}
