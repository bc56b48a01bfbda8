// Version command for the coinsorter CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	coinsorter "github.com/Oichkatzelesfrettschen/CoinSorter"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("coinsorter version %s\n", coinsorter.Version)
	},
}
