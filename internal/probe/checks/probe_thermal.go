package checks

import (
	"context"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// ThermalProbe reads the CPU temperature at rest and classifies it against
// the warning and critical thresholds.
type ThermalProbe struct{}

func (p *ThermalProbe) Name() string  { return probe.NameThermal }
func (p *ThermalProbe) Title() string { return "Thermal Monitoring" }
func (p *ThermalProbe) Description() string {
	return "Reads the CPU die temperature and classifies it against thresholds."
}

func (p *ThermalProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	temp := readCPUTemp(ctx, host)

	status := probe.StatusPass
	switch {
	case temp > cfg.Thresholds.CPUTempCritical:
		status = probe.StatusCritical
	case temp > cfg.Thresholds.CPUTempWarning:
		status = probe.StatusWarning
	}

	return probe.NewResult(status, probe.F("cpu_temp", temp)), nil
}
