package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd is the base command; convert is its only subcommand today.
var rootCmd = &cobra.Command{
	Use:   "ccpmcli",
	Short: "Convert Activity-on-Node project networks to Activity-on-Arc",
	Long: `ccpmcli reads an Activity-on-Node precedence network (activity ids plus
predecessor links) and writes its minimal Activity-on-Arc equivalent,
inserting dummy arcs only where the network genuinely requires them.`,
}

// Execute runs the root command, exiting the process with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a ccpmcli config file (optional)")
}
