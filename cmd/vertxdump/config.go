package main

import (
	"github.com/spf13/cobra"

	"github.com/danmuck/vertxdump/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vertxdump configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a starter config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.WriteTemplate(args[0], configForce)
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
