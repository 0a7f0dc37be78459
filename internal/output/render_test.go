package output

import (
	"strings"
	"testing"
	"time"

	"hwmedic/internal/analyze"
	"hwmedic/internal/probe"
)

func sampleReport() analyze.Report {
	rs := probe.NewResults()
	rs.Add(probe.NameBattery, probe.NewResult(probe.StatusWarning,
		probe.F("cycles", 1200),
		probe.F("condition", "Normal"),
	))
	rs.Add(probe.NameThermal, probe.NewResult(probe.StatusPass,
		probe.F("cpu_temp", 48.5),
	))

	return analyze.Report{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Summary: analyze.Summary{
			Total: 2, Passed: 1, Failed: 0, Warnings: 1, PassRate: 50,
		},
		Analysis: analyze.Analysis{
			RedFlags: []analyze.RedFlag{{
				Component:      "Battery",
				Severity:       analyze.SeverityHigh,
				Message:        "High cycle count: 1200",
				Recommendation: "Consider battery replacement",
			}},
			GreenFlags:  []string{"CPU thermal performance optimal"},
			TotalIssues: 1,
			HealthScore: 40,
		},
		Results: rs,
	}
}

func TestRenderText_Sections(t *testing.T) {
	out := RenderText(sampleReport())

	wantFragments := []string{
		"HARDWARE DIAGNOSTIC REPORT",
		"Generated: 2026-03-14T09:26:53Z",
		"📊 PROBE SUMMARY",
		"Total Probes: 2",
		"Passed: 1",
		"Warnings: 1",
		"Pass Rate: 50%",
		"🏥 OVERALL HEALTH SCORE: 40/100",
		"🚩 RED FLAGS DETECTED",
		"⚠️  Battery [HIGH]",
		"    Issue: High cycle count: 1200",
		"    Action: Consider battery replacement",
		"✅ GREEN FLAGS (Healthy Components)",
		"  ✓ CPU thermal performance optimal",
		"📋 DETAILED PROBE RESULTS",
		"⚠ Battery Health: WARNING",
		"    cycles: 1200",
		"    condition: Normal",
		"✓ Thermal Monitoring: PASS",
		"    cpu_temp: 48.5",
		"END OF REPORT",
	}
	for _, want := range wantFragments {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n---\n%s", want, out)
		}
	}
}

func TestRenderText_SkipsEmptyFlagBlocks(t *testing.T) {
	report := sampleReport()
	report.Analysis.RedFlags = nil
	report.Analysis.GreenFlags = nil

	out := RenderText(report)

	if strings.Contains(out, "RED FLAGS DETECTED") {
		t.Error("red flag section rendered despite no flags")
	}
	if strings.Contains(out, "GREEN FLAGS") {
		t.Error("green flag section rendered despite no flags")
	}
}

func TestRenderText_ProbesInCollectionOrder(t *testing.T) {
	out := RenderText(sampleReport())

	battery := strings.Index(out, "Battery Health:")
	thermal := strings.Index(out, "Thermal Monitoring:")
	if battery < 0 || thermal < 0 {
		t.Fatalf("probe details missing:\n%s", out)
	}
	if battery > thermal {
		t.Error("probe details out of collection order")
	}
}

func TestStatusSymbol(t *testing.T) {
	tests := []struct {
		status probe.Status
		want   string
	}{
		{probe.StatusPass, "✓"},
		{probe.StatusFail, "✗"},
		{probe.StatusWarning, "⚠"},
		{probe.StatusError, "❌"},
		{probe.StatusCritical, "?"},
	}
	for _, tt := range tests {
		if got := statusSymbol(tt.status); got != tt.want {
			t.Errorf("statusSymbol(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
