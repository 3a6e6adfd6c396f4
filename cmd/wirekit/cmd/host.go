package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danmuck/wirekit/internal/hostport"
)

// hostCmd represents the host command
var hostCmd = &cobra.Command{
	Use:   "host <hostname> [port]",
	Short: "Check a hostname and format host:port pairs",
	Long: `Check a hostname against DNS naming rules. With a port the port is
checked too and the pair is formatted the way it appears in URLs, which
drops the port when it is the default for --scheme.

Examples:
  wirekit host example.com
  wirekit host example.com 443 --scheme https`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		host := args[0]
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "host %s valid=%t\n", host, hostport.ValidHost(host))

		if len(args) < 2 {
			return nil
		}
		port, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("port must be an integer: %q", args[1])
		}
		scheme, _ := cmd.Flags().GetString("scheme")
		fmt.Fprintf(out, "port %d valid=%t\n", port, hostport.ValidPort(port))
		fmt.Fprintf(out, "hostport %s\n", hostport.Format(scheme, host, port))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hostCmd)
	hostCmd.Flags().String("scheme", "http", "scheme deciding which port is the default")
}
