package checks

import (
	"context"
	"strings"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// USBProbe counts attached USB/Thunderbolt devices.
type USBProbe struct{}

func (p *USBProbe) Name() string  { return probe.NameUSB }
func (p *USBProbe) Title() string { return "USB/Thunderbolt" }
func (p *USBProbe) Description() string {
	return "Counts devices on the USB/Thunderbolt bus."
}

func (p *USBProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	out, err := host.Output(ctx, "ioreg", "-p", "IOUSB", "-l")
	if err != nil {
		return probe.FailResult(probe.F("devices_found", 0)), nil
	}

	// Zero devices is still a pass: an empty bus is normal, an unreadable
	// bus is not.
	devices := strings.Count(string(out), "Device Identifier")
	return probe.PassResult(probe.F("devices_found", devices)), nil
}
