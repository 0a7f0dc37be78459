package checks

import (
	"context"
	"strings"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// CameraProbe detects the built-in camera module.
type CameraProbe struct{}

func (p *CameraProbe) Name() string  { return probe.NameCamera }
func (p *CameraProbe) Title() string { return "Camera Module" }
func (p *CameraProbe) Description() string {
	return "Verifies a camera module is detected by the system profiler."
}

func (p *CameraProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	out, err := host.Output(ctx, "system_profiler", "SPCameraDataType")
	if err != nil {
		return probe.FailResult(probe.F("detected", false)), nil
	}

	// A camera entry produces a multi-line device block; a header alone does not.
	detected := len(strings.Split(string(out), "\n")) > 5
	status := probe.StatusFail
	if detected {
		status = probe.StatusPass
	}
	return probe.NewResult(status, probe.F("detected", detected)), nil
}
