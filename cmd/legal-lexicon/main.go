// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the legal-lexicon CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/legal-lexicon/internal/logging"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the log.* settings before any subcommand runs.
var logger = zap.NewNop().Sugar()

// rootCmd is the base command for the legal-lexicon CLI.
var rootCmd = &cobra.Command{
	Use:   "legal-lexicon",
	Short: "Build and maintain the multilingual legal terminology dictionary",
	Long: `legal-lexicon merges Dutch legal glossaries, dictionaries and example
sentences into one unified dictionary, and maintains the data around it:
sentence-level legislation files, the manual translation workflow,
international source metadata and a queryable term index.

All paths default to a layout under --data-dir (legal-data/netherlands).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(types.LogConfig{
			Mode:  viper.GetString("log.mode"),
			Level: viper.GetString("log.level"),
		})
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./legal-lexicon.yaml or ~/.config/legal-lexicon/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", types.DefaultDataDir, "jurisdiction data directory")
	rootCmd.PersistentFlags().String("log-mode", "development", "log encoder: development or production")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	viper.SetDefault("data_dir", types.DefaultDataDir)
	viper.SetDefault("log.mode", "development")
	viper.SetDefault("log.level", "info")

	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("log.mode", rootCmd.PersistentFlags().Lookup("log-mode"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("legal-lexicon")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "legal-lexicon"))
		}
	}

	viper.SetEnvPrefix("LEGAL_LEXICON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// layout returns the data layout for the configured data directory.
func layout() types.Layout {
	return types.NewLayout(viper.GetString("data_dir"))
}

// stringFlag returns the named flag value, or fallback when it is unset.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
