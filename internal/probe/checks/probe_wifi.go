package checks

import (
	"context"
	"strings"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// WiFiProbe detects the Wi-Fi hardware interface.
type WiFiProbe struct{}

func (p *WiFiProbe) Name() string  { return probe.NameWiFi }
func (p *WiFiProbe) Title() string { return "Wi-Fi" }
func (p *WiFiProbe) Description() string {
	return "Verifies a Wi-Fi hardware port is listed among network interfaces."
}

func (p *WiFiProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	out, err := host.Output(ctx, "networksetup", "-listallhardwareports")
	if err != nil {
		return probe.FailResult(probe.F("detected", false)), nil
	}

	detected := strings.Contains(string(out), "Wi-Fi")
	status := probe.StatusFail
	if detected {
		status = probe.StatusPass
	}
	return probe.NewResult(status, probe.F("detected", detected)), nil
}
