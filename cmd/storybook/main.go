// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the storybook CLI, which builds the
// story manifest (stories.js) read by the e-book page.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the storybook CLI. Without a subcommand
// it behaves like "storybook generate".
var rootCmd = &cobra.Command{
	Use:   "storybook",
	Short: "Build the story manifest for the e-book reader",
	Long: `storybook scans a directory of numbered story files (<number>.<author>.txt),
matches each one to a cover image under image/ or image/compressed/, and
writes the ordered result as stories.js.

Run with no arguments inside the story directory to regenerate stories.js.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PreRunE:      bindGenerateFlags,
	RunE:         runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./storybook.yaml or ~/.config/storybook/storybook.yaml)")
	addGenerateFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("storybook")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "storybook"))
		}
	}

	viper.SetEnvPrefix("STORYBOOK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
