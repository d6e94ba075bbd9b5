package cmd

import (
	"fmt"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cocoonstack/macgen/mac"
)

var generateCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [flags]",
		Aliases: []string{"gen"},
		Short:   "Generate random unicast MAC addresses",
		Example: "  macgen generate --prefix 02:AB --count 3",
		Args:    cobra.NoArgs,
		RunE:    runGenerate,
	}
	defaults := mac.DefaultOptions()
	cmd.Flags().String("prefix", defaults.Prefix, "hex prefix of 0-5 bytes, separators ignored (e.g. 02:AB)")
	cmd.Flags().Bool("local", defaults.Local, "set the locally-administered bit")
	cmd.Flags().Int("count", defaults.Count, "number of addresses")
	cmd.Flags().String("seed", "", "seed for reproducible output")
	cmd.Flags().Bool("crypto", false, "draw bytes from crypto/rand")
	cmd.Flags().String("format", "text", "output format: text or json")

	for _, name := range []string{"prefix", "local", "count", "seed", "crypto", "format"} {
		_ = viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}()

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	logger := log.WithFunc("cmd.generate")

	if err := conf.Validate(); err != nil {
		return err
	}
	prefix, err := mac.ParsePrefix(conf.Prefix)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if prefix.FirstByteAltered(conf.Local) {
		first := prefix.Bytes()[0]
		logger.Warnf(ctx, "prefix first byte %02X rewritten to %02X (local=%v)",
			first, mac.NormalizeFirstByte(first, conf.Local), conf.Local)
	}

	gen := mac.New(mac.WithSource(conf.Source()))
	addrs, err := gen.GenerateAddrs(prefix, conf.Local, conf.Count)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger.Debugf(ctx, "generated %d addresses, prefix %q, local %v", len(addrs), prefix.String(), conf.Local)

	return printAddrs(cmd.OutOrStdout(), addrs, conf.Format)
}
