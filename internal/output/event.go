package output

import "hwmedic/internal/probe"

// Event types emitted over one run's lifecycle.
const (
	EventRunStarted   = "run.started"
	EventProbeStarted = "probe.started"
	EventProbeResult  = "probe.result"
	EventRunFinished  = "run.finished"
)

// Event is a lifecycle record for streaming output.
//
// In NDJSON mode, sinks emit one JSON object per line for every event type.
// In aggregate JSON mode, sinks keep only probe.result events and flush them
// as an array on Close.
type Event struct {
	Type     string        `json:"type"`
	Probe    string        `json:"probe,omitempty"`
	Result   *probe.Result `json:"result,omitempty"`
	Probes   int           `json:"probes,omitempty"`
	Progress int           `json:"progress,omitempty"`
}
