package checks

import (
	"context"
	"fmt"
	"strings"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// AuthenticityProbe looks for part-replacement indicators in the power
// subsystem report. Each anomaly string it records becomes a red flag during
// analysis.
type AuthenticityProbe struct{}

func (p *AuthenticityProbe) Name() string  { return probe.NameAuthenticity }
func (p *AuthenticityProbe) Title() string { return "Part Authenticity" }
func (p *AuthenticityProbe) Description() string {
	return "Checks battery condition and manufacturer data for part-replacement indicators."
}

func (p *AuthenticityProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	out, err := host.Output(ctx, "system_profiler", "SPPowerDataType")
	if err != nil {
		return probe.Result{}, fmt.Errorf("read power data: %w", err)
	}
	power := string(out)

	anomalies := []string{}
	if !strings.Contains(power, "Condition: Normal") {
		anomalies = append(anomalies, "Battery condition not normal")
	}
	if v, ok := profilerValue(power, "Manufacturer"); ok && v == "" {
		anomalies = append(anomalies, "Battery manufacturer not reported")
	}

	status := probe.StatusPass
	if len(anomalies) > 0 {
		status = probe.StatusWarning
	}
	return probe.NewResult(status, probe.F("red_flags", anomalies)), nil
}
