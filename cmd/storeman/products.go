package main

import (
	"fmt"

	"github.com/spf13/cobra"

	productuc "example.com/storeman/internal/usecase/product"
	"example.com/storeman/internal/usecase/table"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Work with the products of a store",
}

var (
	listStatus string
	listSearch string
	listSort   string
	listDesc   bool
)

var productData string

var productsListCmd = &cobra.Command{
	Use:   "list <storeID>",
	Short: "List the products of a store",
	Long: `List the products of a store.

--status is applied by the server; --search and --sort are applied locally
the same way the web console does.

Example:
  storeman products list 42
  storeman products list 42 --status STORAGE --sort Price --desc
  storeman products list 42 --search steel --json`,
	Args: exactArgs(1),
	RunE: runProductsList,
}

var productsGetCmd = &cobra.Command{
	Use:   "get <storeID> <productID>",
	Short: "Show one product",
	Args:  exactArgs(2),
	RunE:  runProductsGet,
}

var productsCreateCmd = &cobra.Command{
	Use:   "create <storeID>",
	Short: "Create a product from a JSON document",
	Long: `Create a product in a store.

Example:
  storeman products create 42 --data '{"Name":"Kettle","Price":25,"Status":"OK"}'`,
	Args: exactArgs(1),
	RunE: runProductsCreate,
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <storeID> <productID>",
	Short: "Replace a product with a JSON document",
	Args:  exactArgs(2),
	RunE:  runProductsUpdate,
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <storeID> <productID>",
	Short: "Delete one product",
	Args:  exactArgs(2),
	RunE:  runProductsDelete,
}

func init() {
	productsListCmd.Flags().StringVar(&listStatus, "status", table.StatusAll, "status filter (ALL, OK, STORAGE, OUT_OF_STOCK)")
	productsListCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive match on Name, Specs and SupplierInfo")
	productsListCmd.Flags().StringVar(&listSort, "sort", "", "sort column (Name, Price, Specs, SupplierInfo, MadeIn, ProductionCompanyName, Rating)")
	productsListCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")

	productsCreateCmd.Flags().StringVar(&productData, "data", "", "product as JSON")
	productsUpdateCmd.Flags().StringVar(&productData, "data", "", "product as JSON")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	var col table.Column
	if listSort != "" {
		parsed, ok := table.ParseColumn(listSort)
		if !ok {
			return fmt.Errorf("%w: unknown sort column %q", errUsage, listSort)
		}
		col = parsed
	}

	a, err := newApp(cfg, "storeman")
	if err != nil {
		return err
	}
	defer a.close()

	products, err := a.products.List(cmd.Context(), args[0], listStatus)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	rows := table.FilterBySearch(products, listSearch)
	if col != "" {
		dir := table.Asc
		if listDesc {
			dir = table.Desc
		}
		rows = table.SortBy(rows, col, dir)
	}
	return printProducts(cmd.OutOrStdout(), rows, table.CountByStatus(products))
}

func runProductsGet(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, "storeman")
	if err != nil {
		return err
	}
	defer a.close()

	p, err := a.products.Get(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	return printProduct(cmd.OutOrStdout(), p)
}

func runProductsCreate(cmd *cobra.Command, args []string) error {
	var in productuc.Input
	if err := decodeData(productData, &in); err != nil {
		return err
	}
	a, err := newApp(cfg, "storeman")
	if err != nil {
		return err
	}
	defer a.close()

	p, err := a.products.Create(cmd.Context(), args[0], in)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return printProduct(cmd.OutOrStdout(), p)
}

func runProductsUpdate(cmd *cobra.Command, args []string) error {
	var in productuc.Input
	if err := decodeData(productData, &in); err != nil {
		return err
	}
	a, err := newApp(cfg, "storeman")
	if err != nil {
		return err
	}
	defer a.close()

	p, err := a.products.Update(cmd.Context(), args[0], args[1], in)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return printProduct(cmd.OutOrStdout(), p)
}

func runProductsDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, "storeman")
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.products.Delete(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted product %s from store %s\n", args[1], args[0])
	return nil
}
