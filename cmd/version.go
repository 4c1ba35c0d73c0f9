package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	MAJOR    = 1
	MINOR    = 0
	REVISION = 0
)

func init() {
	RootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number.",
	Long:  `Output the version number of this binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "contigtable version %v.%v.%v\n", MAJOR, MINOR, REVISION)
	},
}
