package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hwmedic/internal/probe"
)

var probesListQuiet bool

var probesCmd = &cobra.Command{
	Use:   "probes",
	Short: "Manage and list probes",
	Long: `Inspect the hardware probe battery.

This command group helps you discover which probes exist and what each probe
checks. Probes are executed during diagnostic runs (see "hwmedic diagnose --help").

Examples:
  # List the full battery in execution order
  hwmedic probes list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var probesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the probe battery",
	Long: `List all probes registered in this build, in execution order.

Examples:
  hwmedic probes list

Output:
  A vertical list of probes:
    ----------------------------------------
    PROBE: {NAME}
    ----------------------------------------
    {TITLE}
    {DESCRIPTION}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range probe.List() {
			if probesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), p.Name())
			} else {
				printProbe(cmd.OutOrStdout(), p)
			}
		}
		return nil
	},
}

var probesShowCmd = &cobra.Command{
	Use:   "show [probe-name]",
	Short: "Show details of a specific probe",
	Long: `Show details of a specific probe by its name.

Examples:
  hwmedic probes show "Battery Health"
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		probes, err := probe.Resolve(args[0])
		if err != nil {
			return err
		}
		if len(probes) == 0 {
			return fmt.Errorf("probe not found: %s", args[0])
		}
		printProbe(cmd.OutOrStdout(), probes[0])
		return nil
	},
}

func printProbe(w io.Writer, p probe.Probe) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "PROBE: %s\n", p.Name())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, p.Title())
	fmt.Fprintln(w, p.Description())
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(probesCmd)
	probesCmd.AddCommand(probesListCmd)
	probesListCmd.Flags().BoolVarP(&probesListQuiet, "quiet", "q", false, "Only print probe names")
	probesCmd.AddCommand(probesShowCmd)
}
