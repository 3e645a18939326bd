package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/storefront-catalog/internal/api/client"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Browse and manage products",
	}

	productsRoot.AddCommand(
		productsListCmd(),
		productsGetCmd(),
		productsToggleCmd(),
	)

	return productsRoot
}

func productsListCmd() *cobra.Command {
	var params apiclient.ListingParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List storefront products with optional filters",
		Long: "List products the way the storefront shows them: filtered by brand,\n" +
			"category, color and size, optionally restricted to men or women,\n" +
			"sorted and paginated.",
		Example: `  # First page of every product
  catalogctl products list

  # Women's shirts in two colors, cheapest first
  catalogctl products list --gender women --category Shirts \
    --color red --color blue --sort priceLowToHigh

  # Search with a size filter, page 2
  catalogctl products list --search "linen" --size M --page 2`,
		RunE: func(_ *cobra.Command, _ []string) error {
			res, err := newClient().ListProducts(context.Background(), &params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(res)
			}

			if len(res.Products) == 0 {
				fmt.Println("No products found.")
				return nil
			}

			fmt.Printf("Page %d of %d (%d products)\n\n", res.CurrentPage, res.TotalPages, res.Count)
			return printProductsTable(os.Stdout, res.Products)
		},
	}
	cmd.Flags().StringVar(&params.Gender, "gender", "", "restrict to men or women")
	cmd.Flags().StringVar(&params.Search, "search", "", "name substring to search for")
	cmd.Flags().
		StringVar(&params.Sort, "sort", "", "sort order (default, priceLowToHigh, priceHighToLow)")
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().StringSliceVar(&params.Brands, "brand", nil, "brand filter (repeatable)")
	cmd.Flags().StringSliceVar(&params.Categories, "category", nil, "category filter (repeatable)")
	cmd.Flags().StringSliceVar(&params.Colors, "color", nil, "color filter (repeatable)")
	cmd.Flags().StringSliceVar(&params.Sizes, "size", nil, "size filter (repeatable)")

	return cmd
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show product details",
		Example: `  catalogctl products get 3f9c2a2e-5b1d-4e8f-9a43-0c7d2b1e6f10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := newClient().GetProduct(context.Background(), args[0])
			if apiclient.IsNotFound(err) {
				return fmt.Errorf("product %s not found", args[0])
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(d)
			}

			return printProductDetail(os.Stdout, d)
		},
	}
}

func productsToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-active <id>",
		Short: "Activate or deactivate a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			active, err := newClient().ToggleProductActive(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Product %s active: %v\n", args[0], active)
			return nil
		},
	}
}
