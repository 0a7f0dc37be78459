package checks

import (
	"context"
	"fmt"
	"time"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// CPUStressProbe loads every core for the configured duration and classifies
// a post-load temperature above the critical threshold as thermal throttling.
// It claims the CPU exclusively; the battery runs it strictly sequentially.
type CPUStressProbe struct{}

func (p *CPUStressProbe) Name() string  { return probe.NameCPUStress }
func (p *CPUStressProbe) Title() string { return "CPU Stress Test" }
func (p *CPUStressProbe) Description() string {
	return "Loads all CPU cores with stress-ng and checks for thermal throttling."
}

func (p *CPUStressProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	duration := cfg.Stress.Duration()

	// The exec timeout exceeds the load duration so stress-ng can wind down
	// on its own; hitting it means the tool hung.
	ctx, cancel := context.WithTimeout(ctx, duration+10*time.Second)
	defer cancel()

	tempBefore := readCPUTemp(ctx, host)

	_, err := host.Output(ctx, "stress-ng",
		"--cpu", "0", // all CPUs
		"--timeout", fmt.Sprintf("%ds", cfg.Stress.DurationSeconds),
		"--metrics-brief",
	)
	if err != nil {
		if ctx.Err() != nil {
			return probe.Result{}, fmt.Errorf("cpu stress test timeout")
		}
		return probe.Result{}, fmt.Errorf("cpu stress: %w", err)
	}

	tempAfter := readCPUTemp(ctx, host)
	throttled := tempAfter > cfg.Thresholds.CPUTempCritical

	status := probe.StatusPass
	if throttled {
		status = probe.StatusWarning
	}
	return probe.NewResult(status,
		probe.F("temp_before", tempBefore),
		probe.F("temp_after", tempAfter),
		probe.F("throttled", throttled),
		probe.F("duration", cfg.Stress.DurationSeconds),
	), nil
}
