package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"example.com/storeman/internal/config"
)

// Global flag values.
var (
	flagConfig string
	flagJSON   bool
)

var (
	v   = viper.New()
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "storeman",
	Short:         "Manage stores and their products",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		loaded, err := config.Load(v, flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "config file (default: ./storeman.yaml if present)")
	flags.String("api-url", config.DefaultBaseURL, "base URL of the stores API")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&flagJSON, "json", false, "output as JSON")

	bindFlag("api.base_url", flags, "api-url")
	bindFlag("log.level", flags, "log-level")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(storesCmd)
	rootCmd.AddCommand(productsCmd)
}

// bindFlag lets the named flag override the config key when set.
func bindFlag(key string, fs *pflag.FlagSet, name string) {
	if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

// exactArgs wraps cobra.ExactArgs so that argument mistakes map to the
// user error exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}
