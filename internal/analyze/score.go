package analyze

import (
	"math"

	"hwmedic/internal/probe"
)

// Penalty weights per red flag severity. They are subtracted from the base
// pass-rate score, so a single critical flag outweighs two high flags.
const (
	penaltyCritical = 20
	penaltyHigh     = 10
	penaltyMedium   = 5
)

// HealthScore computes the overall 0–100 hardware health score.
//
// Formula:
//
//	base    = 100 * passed / total        (0 when total == 0)
//	penalty = 20*critical + 10*high + 5*medium
//	score   = max(0, base - penalty), rounded to 1 decimal
//
// Only results whose status is exactly "pass" count as passed; warnings and
// errors do not. base cannot exceed 100, so no upper clamp is needed.
func HealthScore(results *probe.Results, redFlags []RedFlag) float64 {
	total := results.Len()

	var passed int
	for _, name := range results.Names() {
		if r, ok := results.Get(name); ok && r.Status == probe.StatusPass {
			passed++
		}
	}

	var base float64
	if total > 0 {
		base = float64(passed) / float64(total) * 100
	}

	var penalty float64
	for _, f := range redFlags {
		switch f.Severity {
		case SeverityCritical:
			penalty += penaltyCritical
		case SeverityHigh:
			penalty += penaltyHigh
		case SeverityMedium:
			penalty += penaltyMedium
		}
	}

	return round1(math.Max(0, base-penalty))
}

// round1 rounds v to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
