package checks

import (
	"context"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// SSDHealthProbe reports root volume capacity and, when SMART tooling is
// available, the drive's remaining health percentage.
type SSDHealthProbe struct{}

func (p *SSDHealthProbe) Name() string  { return probe.NameSSDHealth }
func (p *SSDHealthProbe) Title() string { return "SSD Health" }
func (p *SSDHealthProbe) Description() string {
	return "Reports root volume usage and best-effort SMART health data."
}

func (p *SSDHealthProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	usage, err := disk.UsageWithContext(ctx, "/")
	if err != nil {
		return probe.Result{}, err
	}

	fields := []probe.Field{
		probe.F("total_gb", round2(float64(usage.Total)/(1<<30))),
		probe.F("used_gb", round2(float64(usage.Used)/(1<<30))),
		probe.F("free_gb", round2(float64(usage.Free)/(1<<30))),
	}

	// SMART data is best effort: smartmontools may not be installed.
	if out, err := host.Output(ctx, "smartctl", "-a", "disk0"); err == nil {
		fields = append(fields, probe.F("health_percent", smartHealthPercent(string(out))))
	}

	return probe.PassResult(fields...), nil
}

// smartHealthPercent derives remaining health from smartctl output. NVMe
// drives report "Percentage Used"; 100 is assumed when no wear line is found.
func smartHealthPercent(out string) int {
	if v, ok := profilerValue(out, "Percentage Used"); ok {
		v = strings.TrimSuffix(strings.TrimSpace(v), "%")
		if used, err := strconv.Atoi(v); err == nil && used >= 0 && used <= 100 {
			return 100 - used
		}
	}
	return 100
}
