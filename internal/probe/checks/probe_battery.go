package checks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// BatteryProbe inspects battery condition, cycle count and charge against the
// configured thresholds.
type BatteryProbe struct{}

func (p *BatteryProbe) Name() string  { return probe.NameBattery }
func (p *BatteryProbe) Title() string { return "Battery Health" }
func (p *BatteryProbe) Description() string {
	return "Checks battery cycle count, charge level and reported condition against thresholds."
}

func (p *BatteryProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	out, err := host.Output(ctx, "system_profiler", "SPPowerDataType")
	if err != nil {
		return probe.Result{}, fmt.Errorf("read power data: %w", err)
	}
	power := string(out)

	cycles := 0
	if v, ok := profilerValue(power, "Cycle Count"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cycles = n
		}
	}

	condition := "Unknown"
	if v, ok := profilerValue(power, "Condition"); ok {
		condition = v
	}

	// State of charge is not always reported (e.g. desktops); -1 means unknown
	// and skips the low-charge check.
	charge := -1.0
	if v, ok := profilerValue(power, "State of Charge (%)"); ok {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64); err == nil {
			charge = n
		}
	}

	status := probe.StatusPass
	warnings := []string{}

	if cycles > cfg.Thresholds.BatteryCyclesCritical {
		status = probe.StatusWarning
		warnings = append(warnings, fmt.Sprintf("High cycle count: %d", cycles))
	}
	if charge >= 0 && charge < cfg.Thresholds.BatteryHealthWarning {
		status = probe.StatusWarning
		warnings = append(warnings, fmt.Sprintf("Low charge: %v%%", charge))
	}
	if condition != "Normal" {
		status = probe.StatusFail
		warnings = append(warnings, fmt.Sprintf("Battery condition: %s", condition))
	}

	return probe.NewResult(status,
		probe.F("percent", charge),
		probe.F("cycles", cycles),
		probe.F("condition", condition),
		probe.F("warnings", warnings),
	), nil
}
