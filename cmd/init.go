package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mhassouna/docuchat/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .docuchat.yml configuration interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
