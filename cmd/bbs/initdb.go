package main

import (
	"fmt"

	"github.com/itchan-dev/bbs/internal/setup"
	"github.com/spf13/cobra"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		storage, err := setup.OpenStorage(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer storage.Cleanup()

		if err := storage.Migrate(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Initialized the database.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}
