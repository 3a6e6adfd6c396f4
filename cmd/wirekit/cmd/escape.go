package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/wirekit/internal/escape"
)

// escapeCmd represents the escape command
var escapeCmd = &cobra.Command{
	Use:   "escape [file]",
	Short: "Escape bytes into a printable one-line string",
	Long: `Escape bytes into a printable one-line string. Control bytes and
bytes outside printable ASCII come out as \xNN sequences, so the result
survives terminals, logs, and shells.

Example:
  wirekit escape payload.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), escape.Encode(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(escapeCmd)
}
