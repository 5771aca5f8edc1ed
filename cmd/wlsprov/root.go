package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wlsprov",
	Short: "wlsprov provisions app-server domains and messaging resources",
	Long: `wlsprov is a container-start provisioning client for WebLogic-style
application servers. It creates a server domain from a template and
provisions JMS resources against a running admin instance, driven entirely
by environment variables.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the plan instead of executing it")
	rootCmd.PersistentFlags().String("listen", "", "Serve /healthz, /readyz and /metrics on this address while running")
}
