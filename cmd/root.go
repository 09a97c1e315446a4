package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "docuchat",
	Short: "Chat with your indexed business documents",
	Long: `Docuchat answers questions about previously indexed business documents.
It infers scope filters (client, year, month) from each question, restricts
document retrieval accordingly, and hands an enriched prompt to the
configured answering provider.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docuchat.yml", "config file path")
}
