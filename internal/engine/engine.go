// Package engine runs the fixed probe battery sequentially, isolating each
// probe's faults and publishing live progress to concurrent observers.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/output"
	"hwmedic/internal/probe"
)

// ProbeComplete is the terminal CurrentProbe sentinel once the run finishes.
const ProbeComplete = "Complete"

// ErrAlreadyRan is returned by Run on any call after the first. An Engine is
// single-use: one instance per run.
var ErrAlreadyRan = errors.New("engine: run already started; create a new engine per run")

// RunState is the live progress view of one run. Progress is monotonically
// non-decreasing; Complete implies Progress == 100.
type RunState struct {
	CurrentProbe string    `json:"current_probe"`
	Progress     int       `json:"progress"`
	Complete     bool      `json:"complete"`
	StartedAt    time.Time `json:"started_at"`
}

// Engine executes probes in registration order on the calling goroutine.
// Status and Results may be called from any goroutine at any time, including
// mid-run; they copy under a narrow critical section and never block on a
// probe (no lock is held while a probe executes).
type Engine struct {
	cfg    *config.Config
	probes []probe.Probe
	host   hostcmd.Runner
	out    *output.Manager // optional; nil disables event emission

	mu      sync.Mutex
	ran     bool
	state   RunState
	results *probe.Results
}

// New validates the configuration and builds a single-use Engine. A bad
// configuration fails here, never mid-run. out may be nil.
func New(cfg *config.Config, probes []probe.Probe, host hostcmd.Runner, out *output.Manager) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("engine: config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: invalid config: %w", err)
	}
	if host == nil {
		return nil, errors.New("engine: host runner is nil")
	}
	return &Engine{
		cfg:     cfg,
		probes:  probes,
		host:    host,
		out:     out,
		results: probe.NewResults(),
	}, nil
}

// Run executes every probe to completion or failure-isolation. No probe fault
// is fatal: a returned error or a panic becomes an error-status result and
// the run continues. There is no cooperative cancellation once started; a
// probe that never returns stalls the run (probe-level timeouts are each
// probe's own responsibility).
func (e *Engine) Run(ctx context.Context) error {
	e.mu.Lock()
	if e.ran {
		e.mu.Unlock()
		return ErrAlreadyRan
	}
	e.ran = true
	e.state = RunState{StartedAt: time.Now()}
	e.mu.Unlock()

	e.emit(output.Event{Type: output.EventRunStarted, Probes: len(e.probes)})

	total := len(e.probes)
	for i, p := range e.probes {
		name := p.Name()
		e.setCurrent(name)
		e.emit(output.Event{Type: output.EventProbeStarted, Probe: name})

		res := e.invoke(ctx, p)

		progress := progressFor(i+1, total)
		e.record(name, res, progress)
		e.emit(output.Event{Type: output.EventProbeResult, Probe: name, Result: &res, Progress: progress})
	}

	e.finish()
	e.emit(output.Event{Type: output.EventRunFinished, Progress: 100})
	return nil
}

// invoke is the fault-isolation boundary: a probe's returned error or panic
// is collapsed into data, an error-status result. Nothing above the engine
// ever observes a raised fault from a probe.
func (e *Engine) invoke(ctx context.Context, p probe.Probe) probe.Result {
	res, err := runProbe(ctx, p, e.cfg, e.host)
	if err != nil {
		return probe.ErrorResult(err.Error())
	}
	return res
}

func runProbe(ctx context.Context, p probe.Probe, cfg *config.Config, host hostcmd.Runner) (res probe.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = probe.Result{}, fmt.Errorf("probe panicked: %v", r)
		}
	}()
	return p.Run(ctx, cfg, host)
}

// Status returns an immutable copy of the current run state.
func (e *Engine) Status() RunState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Results returns a copy of the accumulated result collection. It is
// well-defined mid-run but only authoritative once Status().Complete is true.
func (e *Engine) Results() *probe.Results {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.results.Clone()
}

func (e *Engine) setCurrent(name string) {
	e.mu.Lock()
	e.state.CurrentProbe = name
	e.mu.Unlock()
}

func (e *Engine) record(name string, res probe.Result, progress int) {
	e.mu.Lock()
	e.results.Add(name, res)
	e.state.Progress = progress
	e.mu.Unlock()
}

func (e *Engine) finish() {
	e.mu.Lock()
	e.state.CurrentProbe = ProbeComplete
	e.state.Progress = 100
	e.state.Complete = true
	e.mu.Unlock()
}

func (e *Engine) emit(ev output.Event) {
	if e.out == nil {
		return
	}
	_ = e.out.Write(ev)
}

func progressFor(done, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
