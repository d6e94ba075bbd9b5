package cmd

import (
	"fmt"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"

	"github.com/cocoonstack/macgen/mac"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect ADDR [ADDR...]",
	Short: "Show the unicast and local bits of MAC addresses (JSON)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	logger := log.WithFunc("cmd.inspect")
	reports := make([]addrReport, 0, len(args))
	for _, s := range args {
		a, err := mac.ParseAddr(s)
		if err != nil {
			return fmt.Errorf("inspect: %w", err)
		}
		reports = append(reports, reportOf(a))
	}
	logger.Debugf(ctx, "inspected %d addresses", len(reports))
	return writeJSON(cmd.OutOrStdout(), reports)
}
