package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/projecteru2/core/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cocoonstack/macgen/config"
)

var (
	cfgFile string
	conf    *config.Config
)

var rootCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macgen",
		Short: "macgen - MAC address generator",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))

	viper.SetEnvPrefix("MACGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cmd.AddCommand(
		generateCmd,
		normalizeCmd,
		inspectCmd,
		versionCmd,
	)

	return cmd
}()

func initConfig() error {
	conf = config.DefaultConfig()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	if err := viper.Unmarshal(conf); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if conf.Log.Level == "" {
		conf.Log.Level = config.DefaultConfig().Log.Level
	}

	if err := log.SetupLog(context.Background(), conf.Log, ""); err != nil {
		return err
	}
	// stdout carries generated addresses only
	if conf.Log.Filename == "" {
		*log.GetGlobalLogger() = log.GetGlobalLogger().Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC822})
	}
	return nil
}

// Execute is the main entry point called from main.go.
func Execute() error {
	ctx, cancel := newCommandContext()
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}
