// Package cli implements the rfid-admin command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rfid-admin",
	Short: "Multi-tenant RFID access-control admin backend",
	Long: `rfid-admin runs the RFID access-control administration service and
provides operational subcommands for schema migration and credential setup.`,
}

// Execute parses the command line and runs the selected subcommand.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
