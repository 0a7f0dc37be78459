package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hwmedic/internal/analyze"
	"hwmedic/internal/engine"
	"hwmedic/internal/flags"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/output"
	"hwmedic/internal/probe"
)

var diagOpts struct {
	Probes              string
	ConsoleFormat       string
	ConsoleFilterStatus []string
	Out                 string
	OutFormat           string
	NoConsole           bool
	Export              bool
	ExportDir           string
}

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Run the hardware probe battery",
	Long: `Run the hardware probe battery and report anomalies.

Probes execute strictly sequentially in a fixed order; the stress probes
claim exclusive CPU and memory resources and must not overlap. A probe
fault never aborts the run: it is recorded as an error-status result and
the remaining probes still execute.

Output:
	Console output is controlled by --console-format (default: text).
	Structured outputs can be written via:
	- --out / --out-format: write an aggregate JSON array or NDJSON stream to a file
	- --no-console: suppress the console sink (use with --out)
	- --export: write the full report (JSON + text) under the report directory

	NDJSON mode emits one JSON object per line. Objects are lifecycle events with
	a "type" field (run.started, probe.started, probe.result, run.finished).

Exit codes:
	0 = clean run, no red flags
	1 = red flags detected
	2 = partial run (some probes errored)
	3 = fatal error (diagnostics did not run)

Examples:
	# Full battery with defaults
	hwmedic diagnose

	# Skip the slow stress probes
	hwmedic diagnose --probes "Battery Health,Thermal Monitoring,SSD Health"

	# Machine-readable stream plus exported report artifacts
	hwmedic diagnose --no-console --out results.ndjson --export
`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDiagnose())
	},
}

func runDiagnose() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 3
	}
	if diagOpts.ExportDir != "" {
		cfg.Report.Directory = diagOpts.ExportDir
	}

	probes, err := probe.Resolve(diagOpts.Probes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving probes: %v\n", err)
		return 3
	}

	outMgr, err := setupOutputManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output sinks: %v\n", err)
		return 3
	}
	defer outMgr.Close()

	eng, err := engine.New(cfg, probes, hostcmd.System{}, outMgr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 3
	}

	if !diagOpts.NoConsole && diagOpts.ConsoleFormat == "text" {
		fmt.Fprintf(os.Stderr, "Running %d probes...\n", len(probes))
	}

	if err := eng.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 3
	}

	report := analyze.BuildReport(eng.Results())

	if !diagOpts.NoConsole && diagOpts.ConsoleFormat == "text" {
		fmt.Printf("\nHealth score: %v/100 (%d red flags, %d green flags)\n",
			report.Analysis.HealthScore, len(report.Analysis.RedFlags), len(report.Analysis.GreenFlags))
	}

	if diagOpts.Export {
		exporter, err := output.NewExporter(cfg.Report.Directory)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 3
		}
		art, err := exporter.Export(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting report: %v\n", err)
			return 3
		}
		fmt.Fprintf(os.Stderr, "Report written: %s\n", art.TextPath)
	}

	return exitCodeForRun(report)
}

// exitCodeForRun maps a completed report to the diagnose exit code contract.
func exitCodeForRun(report analyze.Report) int {
	hasErrors := false
	for _, name := range report.Results.Names() {
		if r, ok := report.Results.Get(name); ok && r.Status == probe.StatusError {
			hasErrors = true
			break
		}
	}
	if hasErrors {
		return 2
	}
	if len(report.Analysis.RedFlags) > 0 {
		return 1
	}
	return 0
}

func setupOutputManager() (*output.Manager, error) {
	outMgr := output.NewManager()

	if !diagOpts.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(nil, diagOpts.ConsoleFormat, diagOpts.ConsoleFilterStatus)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	if diagOpts.Out != "" {
		fs, err := output.NewFileSink(diagOpts.Out, diagOpts.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)

	diagnoseCmd.Flags().StringVar(&diagOpts.Probes, flags.FlagProbes, "", "Probe selector as a comma-separated name list (empty = full battery; order stays fixed)")

	diagnoseCmd.Flags().StringVar(&diagOpts.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	diagnoseCmd.Flags().StringSliceVar(&diagOpts.ConsoleFilterStatus, flags.FlagConsoleFilterStatus, nil, "Filter console output by status (pass, fail, warning, critical, error). Comma-separated.")
	diagnoseCmd.Flags().StringVar(&diagOpts.Out, flags.FlagOut, "", "Write structured output to this path")
	diagnoseCmd.Flags().StringVar(&diagOpts.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	diagnoseCmd.Flags().BoolVar(&diagOpts.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --out/--export)")
	diagnoseCmd.Flags().BoolVar(&diagOpts.Export, flags.FlagExport, false, "Export the full report (JSON + text) after the run")
	diagnoseCmd.Flags().StringVar(&diagOpts.ExportDir, flags.FlagExportDir, "", "Override the report directory for --export")
}
