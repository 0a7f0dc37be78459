package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"hwmedic/internal/probe"
)

func init() {
	// Deterministic text output regardless of the test terminal.
	color.NoColor = true
}

func resultEvent(name string, status probe.Status, fields ...probe.Field) Event {
	r := probe.NewResult(status, fields...)
	return Event{Type: EventProbeResult, Probe: name, Result: &r, Progress: 50}
}

func TestConsoleSink_Text(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "text", nil)

	if err := sink.Write(resultEvent("Battery Health", probe.StatusPass)); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if got := buf.String(); got != "[PASS] Battery Health\n" {
		t.Fatalf("text output = %q", got)
	}
}

func TestConsoleSink_Text_AppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "text", nil)

	ev := resultEvent("CPU Stress Test", probe.StatusError, probe.F("error", "tool missing"))
	if err := sink.Write(ev); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if got := buf.String(); got != "[ERROR] CPU Stress Test - tool missing\n" {
		t.Fatalf("text output = %q", got)
	}
}

func TestConsoleSink_Text_IgnoresLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "text", nil)

	for _, ev := range []Event{
		{Type: EventRunStarted, Probes: 14},
		{Type: EventProbeStarted, Probe: "Battery Health"},
		{Type: EventRunFinished, Progress: 100},
	} {
		if err := sink.Write(ev); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}
	if buf.Len() > 0 {
		t.Fatalf("lifecycle events produced text output: %q", buf.String())
	}
}

func TestConsoleSink_Filtering(t *testing.T) {
	tests := []struct {
		name           string
		filterStatuses []string
		status         probe.Status
		shouldWrite    bool
	}{
		{"no filter - pass", nil, probe.StatusPass, true},
		{"filter fail - input pass", []string{"fail"}, probe.StatusPass, false},
		{"filter fail - input fail", []string{"fail"}, probe.StatusFail, true},
		{"filter fail,error - input error", []string{"fail", "error"}, probe.StatusError, true},
		{"filter critical - input warning", []string{"critical"}, probe.StatusWarning, false},
		{"filter is case-insensitive", []string{"FAIL"}, probe.StatusFail, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := NewConsoleSink(&buf, "text", tt.filterStatuses)

			if err := sink.Write(resultEvent("p", tt.status)); err != nil {
				t.Fatalf("Write error: %v", err)
			}

			wrote := buf.Len() > 0
			if wrote != tt.shouldWrite {
				t.Fatalf("wrote = %v, want %v (output: %q)", wrote, tt.shouldWrite, buf.String())
			}
		})
	}
}

func TestConsoleSink_JSON_AggregatesOnClose(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "json", nil)

	if err := sink.Write(Event{Type: EventRunStarted, Probes: 2}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := sink.Write(resultEvent("a", probe.StatusPass)); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := sink.Write(resultEvent("b", probe.StatusFail)); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.Len() > 0 {
		t.Fatalf("json mode wrote before Close: %q", buf.String())
	}

	if err := sink.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	var events []Event
	if err := json.Unmarshal(buf.Bytes(), &events); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
	}
	// Lifecycle events are excluded from the aggregate.
	if len(events) != 2 {
		t.Fatalf("aggregated %d events, want 2", len(events))
	}
	if events[0].Probe != "a" || events[1].Probe != "b" {
		t.Fatalf("aggregate order wrong: %+v", events)
	}
}

func TestConsoleSink_NDJSON_StreamsAllEvents(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "ndjson", nil)

	if err := sink.Write(Event{Type: EventRunStarted, Probes: 1}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := sink.Write(resultEvent("a", probe.StatusPass)); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("ndjson lines = %d, want 2:\n%s", len(lines), buf.String())
	}
	for i, line := range lines {
		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
	}
}

func TestConsoleSink_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "xml", nil)

	if err := sink.Write(resultEvent("a", probe.StatusPass)); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
