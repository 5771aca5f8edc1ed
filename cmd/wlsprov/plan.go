package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provtools/wlsprov/internal/cli"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:       "plan [create-domain|provision-jms]",
	Short:     "Print the administrative call sequence without executing it",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"create-domain", "provision-jms"},
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFromFlags(cmd)
		opts.DryRun = true

		var err error
		switch args[0] {
		case "create-domain":
			err = cli.RunCreateDomain(cmd.Context(), opts)
		case "provision-jms":
			err = cli.RunProvisionJMS(cmd.Context(), opts)
		default:
			err = fmt.Errorf("unknown plan %q", args[0])
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().String("topology", "", "YAML file overriding the built-in messaging topology")
}
