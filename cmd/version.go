package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cocoonstack/macgen/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version, git revision, and build timestamp",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), version.String())
	},
}
