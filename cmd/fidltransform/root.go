package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fidltransform",
	Short: "Round-trip FIDL messages between the old and v1 wire layouts",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode (human-readable, debug-level) logging")
	rootCmd.AddCommand(conformanceCmd)
	rootCmd.AddCommand(transformCmd)
}
