package checks

import (
	"context"
	"strings"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// MicrophoneProbe detects an active audio input engine.
type MicrophoneProbe struct{}

func (p *MicrophoneProbe) Name() string  { return probe.NameMicrophone }
func (p *MicrophoneProbe) Title() string { return "Microphone" }
func (p *MicrophoneProbe) Description() string {
	return "Verifies an audio input engine is registered with the IO registry."
}

func (p *MicrophoneProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	out, err := host.Output(ctx, "ioreg", "-c", "AppleHDAEngineInput", "-r")
	if err != nil {
		return probe.FailResult(probe.F("detected", false)), nil
	}

	detected := strings.Contains(string(out), "IOAudioEngineState")
	status := probe.StatusFail
	if detected {
		status = probe.StatusPass
	}
	return probe.NewResult(status, probe.F("detected", detected)), nil
}
