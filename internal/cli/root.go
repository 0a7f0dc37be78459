package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hwmedic/internal/config"
	"hwmedic/internal/flags"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "hwmedic",
	Short: "Run hardware diagnostic probes and report red flags with a health score",
	Long: `hwmedic runs a fixed battery of hardware diagnostic probes on this machine,
aggregates their outcomes, and derives a 0-100 health score with red flags
(detected anomalies) and green flags (confirmed-healthy subsystems).

hwmedic is read-only: probes inspect hardware and OS state, never change it.

Examples:
	# Show available commands and global flags
	hwmedic --help

	# Run the full battery
	hwmedic diagnose

	# List probes
	hwmedic probes list

	# Run the HTTP shell for a web client
	hwmedic serve

Output:
	By default, commands write human-readable output to stdout.
	The diagnose command supports structured output (see its --help).`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, flags.FlagConfig, "", "Path to a YAML config file (built-in defaults apply when omitted)")
}

// loadConfig builds the effective configuration from defaults and the
// optional --config file, validating before use.
func loadConfig() (*config.Config, error) {
	cfg := config.New()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
