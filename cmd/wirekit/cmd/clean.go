package cmd

import (
	"github.com/spf13/cobra"

	"github.com/danmuck/wirekit/internal/hexview"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Replace unprintable bytes with dots",
	Long: `Replace unprintable bytes with dots, keeping the length intact so
offsets still line up with the original data.

Examples:
  wirekit clean capture.bin
  wirekit clean --keep-spacing=false capture.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keepSpacing, _ := cmd.Flags().GetBool("keep-spacing")
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(hexview.CleanBytes(data, keepSpacing))
		return err
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().Bool("keep-spacing", true, "keep tabs and newlines instead of replacing them")
}
