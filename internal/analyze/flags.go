// Package analyze turns a completed probe result collection into red flags,
// green flags, a summary and a 0–100 health score.
package analyze

import (
	"fmt"
	"strings"

	"hwmedic/internal/probe"
)

type Severity string

// Severities ordered by escalation weight (see score.go for the weights).
const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// RedFlag is a detected anomaly. Flags are collected in detection-rule order,
// not severity order.
type RedFlag struct {
	Component      string   `json:"component"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

// Analysis is the derived anomaly view over one run's results.
type Analysis struct {
	RedFlags    []RedFlag `json:"red_flags"`
	GreenFlags  []string  `json:"green_flags"`
	TotalIssues int       `json:"total_issues"`
	HealthScore float64   `json:"health_score"`
}

// detectionProbes are the component-presence probes folded into one
// aggregated red flag when any of them fail.
var detectionProbes = []string{
	probe.NameCamera,
	probe.NameMicrophone,
	probe.NameAudio,
	probe.NameBluetooth,
	probe.NameWiFi,
}

// Detect evaluates every red-flag and green-flag rule against results.
// Each rule is independent; a collection missing a probe's entry simply
// skips that rule. Red and green flags are asymmetric judgments: absence of
// a red flag never implies a green one.
func Detect(results *probe.Results) Analysis {
	red := []RedFlag{}
	green := []string{}

	if r, ok := results.Get(probe.NameBattery); ok {
		switch r.Status {
		case probe.StatusFail, probe.StatusWarning:
			for _, warning := range r.Strings("warnings") {
				red = append(red, RedFlag{
					Component:      "Battery",
					Severity:       SeverityHigh,
					Message:        warning,
					Recommendation: "Consider battery replacement",
				})
			}
		case probe.StatusPass:
			green = append(green, "Battery health normal")
		}
	}

	if r, ok := results.Get(probe.NameCPUStress); ok {
		if r.Bool("throttled") {
			tempAfter, _ := r.Float64("temp_after")
			red = append(red, RedFlag{
				Component:      "CPU/Thermal",
				Severity:       SeverityHigh,
				Message:        fmt.Sprintf("Thermal throttling detected at %v°C", tempAfter),
				Recommendation: "Check cooling system, thermal paste may need replacement",
			})
		} else {
			green = append(green, "CPU thermal performance optimal")
		}
	}

	if r, ok := results.Get(probe.NameMemoryStress); ok {
		if r.Bool("errors_detected") {
			red = append(red, RedFlag{
				Component:      "Memory",
				Severity:       SeverityCritical,
				Message:        "Memory errors detected during stress test",
				Recommendation: "CRITICAL: Faulty RAM module - replacement required",
			})
		} else {
			green = append(green, "Memory integrity verified")
		}
	}

	var failed []string
	for _, name := range detectionProbes {
		if r, ok := results.Get(name); ok && r.Status == probe.StatusFail {
			short := strings.ReplaceAll(name, " Module", "")
			short = strings.ReplaceAll(short, " System", "")
			failed = append(failed, short)
		}
	}
	if len(failed) > 0 {
		red = append(red, RedFlag{
			Component:      "Hardware Detection",
			Severity:       SeverityMedium,
			Message:        "Failed to detect: " + strings.Join(failed, ", "),
			Recommendation: "Possible counterfeit or damaged components",
		})
	}

	if r, ok := results.Get(probe.NameAuthenticity); ok {
		for _, anomaly := range r.Strings("red_flags") {
			red = append(red, RedFlag{
				Component:      "Authenticity",
				Severity:       SeverityHigh,
				Message:        anomaly,
				Recommendation: "Verify part authenticity with the manufacturer",
			})
		}
	}

	return Analysis{
		RedFlags:    red,
		GreenFlags:  green,
		TotalIssues: len(red),
		HealthScore: HealthScore(results, red),
	}
}
