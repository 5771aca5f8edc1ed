package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	wlsprov "github.com/provtools/wlsprov"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wlsprov",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wlsprov version %s\n", strings.TrimSpace(wlsprov.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
