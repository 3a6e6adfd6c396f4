package cmd

import (
	"github.com/spf13/cobra"

	"github.com/danmuck/wirekit/internal/hexview"
)

// hexdumpCmd represents the hexdump command
var hexdumpCmd = &cobra.Command{
	Use:   "hexdump [file]",
	Short: "Hex dump bytes in 16-byte rows",
	Long: `Hex dump bytes in 16-byte rows with an offset column and a
printable text column.

Examples:
  wirekit hexdump capture.bin
  curl -s example.com | wirekit hexdump`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		return hexview.Fprint(cmd.OutOrStdout(), data)
	},
}

func init() {
	rootCmd.AddCommand(hexdumpCmd)
}
