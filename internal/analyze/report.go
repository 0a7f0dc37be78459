package analyze

import (
	"time"

	"hwmedic/internal/probe"
)

// Report is the terminal artifact of a run: summary, analysis and the full
// result collection under one generation timestamp. Immutable once built.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Summary   Summary        `json:"summary"`
	Analysis  Analysis       `json:"analysis"`
	Results   *probe.Results `json:"detailed_results"`
}

// BuildReport snapshots results into a Report. Callers should only pass a
// collection they consider final (run complete); partial collections produce
// a well-formed but non-authoritative report.
func BuildReport(results *probe.Results) Report {
	results = results.Clone()
	return Report{
		Timestamp: time.Now(),
		Summary:   Summarize(results),
		Analysis:  Detect(results),
		Results:   results,
	}
}
