package checks

import (
	"context"
	"strings"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// BluetoothProbe detects the bluetooth controller.
type BluetoothProbe struct{}

func (p *BluetoothProbe) Name() string  { return probe.NameBluetooth }
func (p *BluetoothProbe) Title() string { return "Bluetooth" }
func (p *BluetoothProbe) Description() string {
	return "Verifies a bluetooth controller is reported by the system profiler."
}

func (p *BluetoothProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	out, err := host.Output(ctx, "system_profiler", "SPBluetoothDataType")
	if err != nil {
		return probe.FailResult(probe.F("detected", false)), nil
	}

	detected := strings.Contains(string(out), "State:")
	status := probe.StatusFail
	if detected {
		status = probe.StatusPass
	}
	return probe.NewResult(status, probe.F("detected", detected)), nil
}
