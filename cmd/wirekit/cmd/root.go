package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/wirekit/internal/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wirekit",
	Short: "Byte-level inspection tools for captured wire data",
	Long: `wirekit renders captured bytes for humans: hex dumps, printable
escape strings, display cleaning, hostname checks, and frame captures.

Every subcommand reads from a file argument when given one, otherwise
from stdin, and writes to stdout. Log lines go to stderr.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.ConfigureCLI()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
