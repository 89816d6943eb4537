package main

import (
	"fmt"

	"github.com/spf13/cobra"

	storeuc "example.com/storeman/internal/usecase/store"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List, create and delete stores",
}

var storesListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List stores, optionally matching query",
	Long: `List stores. A query matches Name, Address or FloorArea
case-insensitively on the server.

Example:
  storeman stores list
  storeman stores list corner --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStoresList,
}

var storesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a store from a JSON document",
	Long: `Create a store.

Example:
  storeman stores create --data '{"Name":"Corner Shop","Address":"1 Main St"}'`,
	Args: cobra.NoArgs,
	RunE: runStoresCreate,
}

var storesDeleteCmd = &cobra.Command{
	Use:   "delete <storeID>",
	Short: "Delete a store and all of its products",
	Args:  exactArgs(1),
	RunE:  runStoresDelete,
}

var storeData string

func init() {
	storesCreateCmd.Flags().StringVar(&storeData, "data", "", "store as JSON")

	storesCmd.AddCommand(storesListCmd)
	storesCmd.AddCommand(storesCreateCmd)
	storesCmd.AddCommand(storesDeleteCmd)
}

func runStoresList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, "storeman")
	if err != nil {
		return err
	}
	defer a.close()

	var query string
	if len(args) == 1 {
		query = args[0]
	}
	stores, err := a.stores.List(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("list stores: %w", err)
	}
	return printStores(cmd.OutOrStdout(), stores)
}

func runStoresCreate(cmd *cobra.Command, args []string) error {
	var in storeuc.CreateInput
	if err := decodeData(storeData, &in); err != nil {
		return err
	}
	a, err := newApp(cfg, "storeman")
	if err != nil {
		return err
	}
	defer a.close()

	s, err := a.stores.Create(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	return printStore(cmd.OutOrStdout(), s)
}

func runStoresDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, "storeman")
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.stores.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted store %s\n", args[0])
	return nil
}
