package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"hwmedic/internal/probe"
)

var statusColors = map[probe.Status]*color.Color{
	probe.StatusPass:     color.New(color.FgGreen),
	probe.StatusFail:     color.New(color.FgRed),
	probe.StatusWarning:  color.New(color.FgYellow),
	probe.StatusCritical: color.New(color.FgRed, color.Bold),
	probe.StatusError:    color.New(color.FgMagenta),
}

type ConsoleSink struct {
	writer          io.Writer
	format          string // "text", "json", "ndjson"
	mu              sync.Mutex
	results         []Event // probe.result events, for JSON array output
	allowedStatuses map[string]bool
}

func NewConsoleSink(w io.Writer, format string, filterStatuses []string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}

	s := &ConsoleSink{
		writer: w,
		format: format,
	}

	if len(filterStatuses) > 0 {
		s.allowedStatuses = make(map[string]bool)
		for _, st := range filterStatuses {
			s.allowedStatuses[strings.ToLower(st)] = true
		}
	}

	return s
}

func (s *ConsoleSink) Write(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(ev)
}

func (s *ConsoleSink) writeLocked(ev Event) error {
	// Apply status filtering to probe results if configured.
	if len(s.allowedStatuses) > 0 && ev.Type == EventProbeResult && ev.Result != nil {
		if !s.allowedStatuses[string(ev.Result.Status)] {
			return nil
		}
	}

	switch s.format {
	case "json":
		if ev.Type != EventProbeResult {
			// Ignore lifecycle events in JSON aggregate mode.
			return nil
		}
		s.results = append(s.results, ev)
		return nil
	case "ndjson":
		if err := json.NewEncoder(s.writer).Encode(ev); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	case "text":
		if ev.Type != EventProbeResult || ev.Result == nil {
			// Ignore lifecycle events in text mode.
			return nil
		}
		tag := fmt.Sprintf("[%s]", strings.ToUpper(string(ev.Result.Status)))
		if c, ok := statusColors[ev.Result.Status]; ok {
			tag = c.Sprint(tag)
		}
		if _, err := fmt.Fprintf(s.writer, "%s %s", tag, ev.Probe); err != nil {
			return err
		}
		if msg, ok := ev.Result.Lookup("error"); ok {
			if _, err := fmt.Fprintf(s.writer, " - %v", msg); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(s.writer); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.results); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	}
	if s.format != "text" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}
