package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papapumpkin/roadworks/internal/config"
	"github.com/papapumpkin/roadworks/internal/inventory"
	"github.com/papapumpkin/roadworks/internal/ui"
)

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "roadworks",
	Short: "Road construction consumption report",
	Long: `Roadworks reads a road segment inventory from standard input and prints
the crystal still required plus a manifest of standard metal and ceramic
units needed to finish every segment.

The inventory is CSV with the header
  ` + strings.Join(inventory.Columns, ",") + `
or, with --input-format toml, an array of [[segment]] tables with the same keys.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetBool("verbose"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runReport,
}

// Execute runs the root command and exits non-zero after printing a single
// diagnostic on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		p := ui.New()
		p.Error(err.Error())
		if errors.Is(err, inventory.ErrMissingColumn) {
			p.Hint("expected header: " + strings.Join(inventory.Columns, ","))
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .roadworks.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().String("input-format", string(inventory.FormatCSV), "inventory encoding: csv or toml")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("input_format", rootCmd.PersistentFlags().Lookup("input-format"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".roadworks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
