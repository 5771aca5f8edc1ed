package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provtools/wlsprov/internal/cli"
)

// createDomainCmd represents the create-domain command
var createDomainCmd = &cobra.Command{
	Use:   "create-domain",
	Short: "Create a server domain from a template",
	Long: `Creates a server domain (name, admin server, credentials, production
mode, optional dedicated administration port with an SSL channel) from a
vendor template. Inputs come from DOMAIN_NAME, ADMIN_NAME, ADMIN_LISTEN_PORT,
PRODUCTION_MODE, ADMINISTRATION_PORT_ENABLED and ADMINISTRATION_PORT.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFromFlags(cmd)

		if err := cli.RunCreateDomain(cmd.Context(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(createDomainCmd)
}

// optionsFromFlags collects the persistent flags shared by all commands.
func optionsFromFlags(cmd *cobra.Command) cli.Options {
	debug, _ := cmd.Flags().GetBool("debug")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	listen, _ := cmd.Flags().GetString("listen")
	topology, _ := cmd.Flags().GetString("topology")

	return cli.Options{
		Debug:    debug,
		DryRun:   dryRun,
		Listen:   listen,
		Topology: topology,
	}
}
