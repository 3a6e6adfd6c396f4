package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danmuck/wirekit/internal/escape"
)

// unescapeCmd represents the unescape command
var unescapeCmd = &cobra.Command{
	Use:   "unescape [string]",
	Short: "Decode an escaped string back into raw bytes",
	Long: `Decode an escaped string back into raw bytes and write them to
stdout. The string comes from the argument, or from stdin when no
argument is given. One trailing newline is dropped before decoding, so
the output of 'wirekit escape' round-trips.

Examples:
  wirekit unescape 'GET / HTTP/1.1\r\n'
  wirekit escape payload.bin | wirekit unescape > payload.copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var escaped string
		if len(args) > 0 {
			escaped = args[0]
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			escaped = string(data)
		}
		raw, err := escape.Decode(strings.TrimSuffix(escaped, "\n"))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	},
}

func init() {
	rootCmd.AddCommand(unescapeCmd)
}
