package output

import (
	"fmt"
	"strings"
	"time"

	"hwmedic/internal/analyze"
	"hwmedic/internal/probe"
)

const (
	bannerLine  = "======================================================================"
	sectionLine = "----------------------------------------------------------------------"
)

var statusSymbols = map[probe.Status]string{
	probe.StatusPass:    "✓",
	probe.StatusFail:    "✗",
	probe.StatusWarning: "⚠",
	probe.StatusError:   "❌",
}

func statusSymbol(s probe.Status) string {
	if sym, ok := statusSymbols[s]; ok {
		return sym
	}
	return "?"
}

// RenderText formats a report for humans: banner, summary, health score, red
// and green flag blocks (each skipped entirely when empty), then a per-probe
// detail dump showing every non-status, non-timestamp field in the order the
// probe recorded it.
func RenderText(report analyze.Report) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(bannerLine)
	line("HARDWARE DIAGNOSTIC REPORT")
	line(bannerLine)
	line("")
	line("Generated: %s", report.Timestamp.Format(time.RFC3339))

	s := report.Summary
	line("")
	line("📊 PROBE SUMMARY")
	line(sectionLine)
	line("Total Probes: %d", s.Total)
	line("Passed: %d", s.Passed)
	line("Failed: %d", s.Failed)
	line("Warnings: %d", s.Warnings)
	line("Pass Rate: %v%%", s.PassRate)

	line("")
	line("🏥 OVERALL HEALTH SCORE: %v/100", report.Analysis.HealthScore)

	if len(report.Analysis.RedFlags) > 0 {
		line("")
		line("🚩 RED FLAGS DETECTED")
		line(sectionLine)
		for _, flag := range report.Analysis.RedFlags {
			line("")
			line("⚠️  %s [%s]", flag.Component, strings.ToUpper(string(flag.Severity)))
			line("    Issue: %s", flag.Message)
			line("    Action: %s", flag.Recommendation)
		}
	}

	if len(report.Analysis.GreenFlags) > 0 {
		line("")
		line("✅ GREEN FLAGS (Healthy Components)")
		line(sectionLine)
		for _, flag := range report.Analysis.GreenFlags {
			line("  ✓ %s", flag)
		}
	}

	line("")
	line("📋 DETAILED PROBE RESULTS")
	line(sectionLine)
	for _, name := range report.Results.Names() {
		r, ok := report.Results.Get(name)
		if !ok {
			continue
		}
		line("")
		line("%s %s: %s", statusSymbol(r.Status), name, strings.ToUpper(string(r.Status)))
		for _, f := range r.Fields {
			line("    %s: %v", f.Key, f.Value)
		}
	}

	line("")
	line(bannerLine)
	line("END OF REPORT")
	line(bannerLine)

	return b.String()
}
