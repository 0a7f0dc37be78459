package flags

// Package flags defines canonical CLI flag names shared across the CLI.
// Keeping these as constants helps avoid drift between Cobra flag wiring and
// other code paths that need to reference flags.
// IMPORTANT: These are flag *names* without leading dashes.
const (
	FlagConfig = "config"

	// Probe selection
	FlagProbes = "probes"

	// Output
	FlagConsoleFormat       = "console-format"
	FlagConsoleFilterStatus = "console-filter-status"
	FlagOut                 = "out"
	FlagOutFormat           = "out-format"
	FlagNoConsole           = "no-console"
	FlagExport              = "export"
	FlagExportDir           = "export-dir"

	// Serve
	FlagListen = "listen"
)
