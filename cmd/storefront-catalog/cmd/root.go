// Package cmd implements the CLI commands for storefront-catalog.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "storefront-catalog",
	Short: "Serve the storefront product catalog",
	Long: "An API service for an online clothing storefront: filtered, sorted and paginated\n" +
		"product listings for shoppers, plus brand, category and product administration.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}
