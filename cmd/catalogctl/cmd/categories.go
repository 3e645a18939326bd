package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	categoriesRoot := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long: "List and delete product categories. Categories carrying a promotion\n" +
			"show its offer and expiry date.",
	}

	categoriesRoot.AddCommand(
		categoriesListCmd(),
		categoriesDeleteCmd(),
	)

	return categoriesRoot
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List all categories",
		Example: `  catalogctl categories list`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cats, err := newClient().ListCategories(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cats)
			}
			if len(cats) == 0 {
				fmt.Println("No categories found.")
				return nil
			}
			return printCategoriesTable(os.Stdout, cats)
		},
	}
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteCategory(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Category %s deleted.\n", args[0])
			return nil
		},
	}
}
