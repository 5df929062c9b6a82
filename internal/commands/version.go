package commands

import (
	"fmt"

	pricetracker "github.com/Gamezxz/crypto-price-tracker"
	"github.com/spf13/cobra"
)

// VersionCmd creates the 'version' command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the appgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "appgen %s\n", pricetracker.Version)
		},
	}
}
