// Package server is the thin HTTP shell over the diagnostic engine: start a
// run, poll its status, fetch analyzed results and export reports.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"hwmedic/internal/analyze"
	"hwmedic/internal/config"
	"hwmedic/internal/engine"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/output"
	"hwmedic/internal/probe"
)

// Handler holds the dependencies for HTTP handlers. It serializes runs:
// engines are single-use, so each accepted start builds a fresh one, and a
// second start is rejected while one is live.
type Handler struct {
	cfg    atomic.Pointer[config.Config]
	probes []probe.Probe
	host   hostcmd.Runner

	mu     sync.Mutex
	eng    *engine.Engine
	runSeq int

	// export collapses concurrent export requests for the same run into one
	// pair of artifacts. Sequential exports still produce fresh artifacts.
	export singleflight.Group

	// newExporter is a test seam.
	newExporter func(dir string) (exporter, error)
}

type exporter interface {
	Export(report analyze.Report) (output.Artifacts, error)
}

// New creates a Handler running the given probe battery.
func New(cfg *config.Config, probes []probe.Probe, host hostcmd.Runner) *Handler {
	h := &Handler{probes: probes, host: host}
	h.cfg.Store(cfg)
	return h
}

// SetConfig swaps the configuration used by subsequent runs. A live run keeps
// the config it started with.
func (h *Handler) SetConfig(cfg *config.Config) {
	h.cfg.Store(cfg)
}

// Routes registers all HTTP routes.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/runs", h.handleStart)
	mux.HandleFunc("GET /api/status", h.handleStatus)
	mux.HandleFunc("GET /api/results", h.handleResults)
	mux.HandleFunc("POST /api/export", h.handleExport)
	return mux
}

// handleStart begins a diagnostic run in the background. Only one run may be
// live at a time.
func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.eng != nil && !h.eng.Status().Complete {
		h.mu.Unlock()
		writeJSON(w, http.StatusConflict, map[string]string{"error": "a run is already in progress"})
		return
	}

	eng, err := engine.New(h.cfg.Load(), h.probes, h.host, nil)
	if err != nil {
		h.mu.Unlock()
		slog.Error("server: failed to build engine", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.eng = eng
	h.runSeq++
	seq := h.runSeq
	h.mu.Unlock()

	go func() {
		slog.Info("server: run started", "run", seq, "probes", len(h.probes))
		if err := eng.Run(context.Background()); err != nil {
			slog.Error("server: run failed to start", "run", seq, "err", err)
			return
		}
		slog.Info("server: run complete", "run", seq)
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

// handleStatus returns the live run state; an idle zero state before any run.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	eng, _ := h.current()
	if eng == nil {
		writeJSON(w, http.StatusOK, engine.RunState{})
		return
	}
	writeJSON(w, http.StatusOK, eng.Status())
}

// handleResults returns results with analysis and summary once the run is
// complete. Results are only authoritative at completion, so partial runs get
// 409 rather than a misleading snapshot.
func (h *Handler) handleResults(w http.ResponseWriter, r *http.Request) {
	eng, _ := h.current()
	if eng == nil || !eng.Status().Complete {
		writeJSON(w, http.StatusConflict, map[string]string{"status": "not_ready"})
		return
	}

	results := eng.Results()
	writeJSON(w, http.StatusOK, map[string]any{
		"results":  results,
		"analysis": analyze.Detect(results),
		"summary":  analyze.Summarize(results),
	})
}

// handleExport writes report artifacts for the completed run and returns
// their paths.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	eng, seq := h.current()
	if eng == nil || !eng.Status().Complete {
		writeJSON(w, http.StatusConflict, map[string]string{"status": "not_ready"})
		return
	}

	v, err, _ := h.export.Do(fmt.Sprintf("export:%d", seq), func() (any, error) {
		exp, err := h.exporterFor(h.cfg.Load().Report.Directory)
		if err != nil {
			return nil, err
		}
		return exp.Export(analyze.BuildReport(eng.Results()))
	})
	if err != nil {
		slog.Error("server: export failed", "run", seq, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) current() (*engine.Engine, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.eng, h.runSeq
}

func (h *Handler) exporterFor(dir string) (exporter, error) {
	if h.newExporter != nil {
		return h.newExporter(dir)
	}
	return output.NewExporter(dir)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("server: failed to encode response", "err", err)
	}
}
