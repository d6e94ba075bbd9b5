package cmd

import (
	"fmt"
	"strconv"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"

	"github.com/cocoonstack/macgen/mac"
)

var normalizeCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [flags] BYTE",
		Short: "Make a first octet unicast and set or clear its local bit",
		Long: "BYTE is decimal or prefixed hex/octal/binary (255, 0xFF, 0o377, 0b11111111).\n" +
			"The result is printed as two uppercase hex digits.",
		Args: cobra.ExactArgs(1),
		RunE: runNormalize,
	}
	cmd.Flags().Bool("local", true, "set the locally-administered bit")
	return cmd
}()

func runNormalize(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		return fmt.Errorf("invalid byte %q: %w", args[0], err)
	}
	local, _ := cmd.Flags().GetBool("local")
	out := mac.NormalizeFirstByte(byte(v), local)
	log.WithFunc("cmd.normalize").Debugf(commandContext(cmd), "%02X -> %02X (local=%v)", v, out, local)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%02X\n", out)
	return err
}
