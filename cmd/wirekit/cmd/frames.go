package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/wirekit/internal/wiredump"
)

// framesCmd represents the frames command
var framesCmd = &cobra.Command{
	Use:   "frames [file]",
	Short: "Render a capture of binary frames",
	Long: `Render a capture of binary frames with named message types, flags,
and decoded fields. Damaged payloads render as far as they decode and
the rest comes out as a hex dump.

Frames already rendered stay on stdout when the capture ends mid-frame;
the error reports how many complete frames came before the damage.

Examples:
  wirekit frames capture.bin
  wirekit frames --names myproto.toml capture.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		naming := wiredump.DefaultNaming()
		if path, _ := cmd.Flags().GetString("names"); path != "" {
			var err error
			naming, err = loadNaming(path)
			if err != nil {
				return err
			}
		}

		maxAuth, _ := cmd.Flags().GetUint64("max-auth")
		maxPayload, _ := cmd.Flags().GetUint64("max-payload")
		limits := wiredump.Limits{MaxAuthBytes: maxAuth, MaxPayloadBytes: maxPayload}

		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		count, err := naming.RenderStream(cmd.OutOrStdout(), bytes.NewReader(data), limits)
		if err != nil {
			return fmt.Errorf("after %d complete frames: %w", count, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(framesCmd)
	framesCmd.Flags().String("names", "", "TOML file overriding the naming tables")
	framesCmd.Flags().Uint64("max-auth", wiredump.DefaultLimits().MaxAuthBytes, "largest auth block to accept, in bytes")
	framesCmd.Flags().Uint64("max-payload", wiredump.DefaultLimits().MaxPayloadBytes, "largest payload to accept, in bytes")
}
