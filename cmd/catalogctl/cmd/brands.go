package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func brandsCmd() *cobra.Command {
	brandsRoot := &cobra.Command{
		Use:   "brands",
		Short: "Manage brands",
	}

	brandsRoot.AddCommand(
		brandsListCmd(),
		brandsDeleteCmd(),
	)

	return brandsRoot
}

func brandsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all brands",
		Example: `  catalogctl brands list
  catalogctl brands list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			brands, err := newClient().ListBrands(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(brands)
			}
			if len(brands) == 0 {
				fmt.Println("No brands found.")
				return nil
			}
			return printBrandsTable(os.Stdout, brands)
		},
	}
}

func brandsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a brand and its image",
		Example: `  catalogctl brands delete 3f9c2a2e-5b1d-4e8f-9a43-0c7d2b1e6f10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteBrand(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Brand %s deleted.\n", args[0])
			return nil
		},
	}
}
