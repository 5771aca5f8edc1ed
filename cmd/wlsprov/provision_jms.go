package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provtools/wlsprov/internal/cli"
)

// provisionJMSCmd represents the provision-jms command
var provisionJMSCmd = &cobra.Command{
	Use:   "provision-jms",
	Short: "Provision JMS resources against a running admin instance",
	Long: `Provisions the messaging topology (JMS server, system module,
subdeployment, connection factory, queue, distributed queue and its member
queues) against the instance at ADMIN_URL, then activates the changes.
Re-running against a domain that already has the JMS server skips its
creation instead of creating a second one.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFromFlags(cmd)

		if err := cli.RunProvisionJMS(cmd.Context(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(provisionJMSCmd)

	provisionJMSCmd.Flags().String("topology", "", "YAML file overriding the built-in messaging topology")
}
