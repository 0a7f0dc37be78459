package probe

import (
	"context"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
)

type Probe interface {
	// Name is the probe's stable display name and its key in the run's
	// result collection.
	Name() string
	Title() string
	Description() string

	// Run performs the diagnostic and returns its outcome. Probes apply
	// their own timeout budget (stress probes carry an internal load
	// duration on top of it). A returned error is collapsed by the engine
	// into an error-status Result; it never aborts the run.
	//
	// Probes only read hardware/OS state, via host; they must not mutate
	// engine state.
	Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (Result, error)
}
