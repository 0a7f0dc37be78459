package checks

import (
	"context"
	"strings"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// AudioProbe counts audio output devices.
type AudioProbe struct{}

func (p *AudioProbe) Name() string  { return probe.NameAudio }
func (p *AudioProbe) Title() string { return "Audio System" }
func (p *AudioProbe) Description() string {
	return "Verifies at least one audio device is reported by the system profiler."
}

func (p *AudioProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	out, err := host.Output(ctx, "system_profiler", "SPAudioDataType")
	if err != nil {
		return probe.FailResult(probe.F("devices_found", 0)), nil
	}

	devices := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "Device Name") {
			devices++
		}
	}

	status := probe.StatusFail
	if devices > 0 {
		status = probe.StatusPass
	}
	return probe.NewResult(status, probe.F("devices_found", devices)), nil
}
