package checks

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	hoststat "github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// SystemInfoProbe records the machine's basic identity: CPU model, installed
// RAM and OS version.
type SystemInfoProbe struct{}

func (p *SystemInfoProbe) Name() string  { return probe.NameSystemInfo }
func (p *SystemInfoProbe) Title() string { return "System Information" }
func (p *SystemInfoProbe) Description() string {
	return "Collects CPU model, installed memory and operating system version."
}

func (p *SystemInfoProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	cpus, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return probe.FailResult(probe.F("error", err.Error())), nil
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return probe.FailResult(probe.F("error", err.Error())), nil
	}
	info, err := hoststat.InfoWithContext(ctx)
	if err != nil {
		return probe.FailResult(probe.F("error", err.Error())), nil
	}

	var model string
	if len(cpus) > 0 {
		model = cpus[0].ModelName
	}

	return probe.PassResult(
		probe.F("cpu", model),
		probe.F("ram_gb", round2(float64(vm.Total)/(1<<30))),
		probe.F("os_version", info.Platform+" "+info.PlatformVersion),
		probe.F("hostname", info.Hostname),
	), nil
}
