package main

import (
	"github.com/itchan-dev/bbs/internal/config"
	"github.com/itchan-dev/bbs/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configFolder string
	cfg          *config.Config
)

// rootCmd serves when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "bbs",
	Short:         "Minimal bulletin board",
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.MustLoad(configFolder)
		logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
}
