package checks

import (
	"context"
	"os"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

// midiSetupPath is the system MIDI utility whose presence indicates a working
// MIDI subsystem.
const midiSetupPath = "/Applications/Utilities/Audio MIDI Setup.app"

// MIDIProbe checks MIDI system availability.
type MIDIProbe struct{}

func (p *MIDIProbe) Name() string  { return probe.NameMIDI }
func (p *MIDIProbe) Title() string { return "MIDI System" }
func (p *MIDIProbe) Description() string {
	return "Verifies the MIDI configuration utility is present."
}

func (p *MIDIProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (probe.Result, error) {
	_, err := os.Stat(midiSetupPath)
	available := err == nil

	status := probe.StatusFail
	if available {
		status = probe.StatusPass
	}
	return probe.NewResult(status, probe.F("available", available)), nil
}
