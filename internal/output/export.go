package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"hwmedic/internal/analyze"
)

// Artifacts are the durable files one export produced.
type Artifacts struct {
	RunID    string `json:"run_id"`
	JSONPath string `json:"json_path"`
	TextPath string `json:"text_path"`
}

// Exporter writes reports to durable storage. Each export is keyed by a
// timestamp-derived run ID unique to the call, so concurrent or repeated
// exports never collide or overwrite each other.
type Exporter struct {
	dir string
}

func NewExporter(dir string) (*Exporter, error) {
	if dir == "" {
		return nil, fmt.Errorf("report directory required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &Exporter{dir: dir}, nil
}

// Export serializes report as indented JSON and renders the human-readable
// text form, writing both under one run ID. A storage failure surfaces to
// the caller; the in-memory report is unaffected.
func (e *Exporter) Export(report analyze.Report) (Artifacts, error) {
	runID, jsonFile, err := e.claimRunID(time.Now().UTC())
	if err != nil {
		return Artifacts{}, err
	}

	art := Artifacts{
		RunID:    runID,
		JSONPath: jsonFile.Name(),
		TextPath: filepath.Join(e.dir, "hardware_report_"+runID+".txt"),
	}

	encoder := json.NewEncoder(jsonFile)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(report)
	if closeErr := jsonFile.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return Artifacts{}, fmt.Errorf("write report json: %w", err)
	}

	if err := os.WriteFile(art.TextPath, []byte(RenderText(report)), 0644); err != nil {
		return Artifacts{}, fmt.Errorf("write report text: %w", err)
	}

	return art, nil
}

// claimRunID derives a run ID from now and atomically claims it by creating
// the JSON artifact with O_EXCL, suffixing a counter on collision.
func (e *Exporter) claimRunID(now time.Time) (string, *os.File, error) {
	base := now.Format("20060102_150405")
	for i := 0; ; i++ {
		runID := base
		if i > 0 {
			runID = fmt.Sprintf("%s_%d", base, i)
		}
		path := filepath.Join(e.dir, "hardware_report_"+runID+".json")
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("create report file: %w", err)
		}
		return runID, f, nil
	}
}
