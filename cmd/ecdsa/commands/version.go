package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release of the ecdsa command, set at link time with
// -ldflags "-X github.com/smallyu/go-ecdsa/cmd/ecdsa/commands.Version=...".
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out(cmd), Version)
		},
	}
}
