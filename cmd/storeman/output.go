package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	domproduct "example.com/storeman/internal/domain/product"
	domstore "example.com/storeman/internal/domain/store"
	"example.com/storeman/internal/usecase/table"
)

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func decodeData(data string, dst any) error {
	if strings.TrimSpace(data) == "" {
		return fmt.Errorf("%w: --data is required", errUsage)
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("%w: --data: %v", errUsage, err)
	}
	return nil
}

func printStores(w io.Writer, stores []*domstore.Store) error {
	if flagJSON {
		return writeJSON(w, stores)
	}
	if len(stores) == 0 {
		_, err := fmt.Fprintln(w, "No matching stores found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tADDRESS\tFLOOR AREA")
	for _, s := range stores {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Address, s.FloorArea)
	}
	return tw.Flush()
}

func printStore(w io.Writer, s *domstore.Store) error {
	if flagJSON {
		return writeJSON(w, s)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", s.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", s.Name)
	fmt.Fprintf(tw, "Address:\t%s\n", s.Address)
	fmt.Fprintf(tw, "Email:\t%s\n", s.Email)
	fmt.Fprintf(tw, "Phone Number:\t%s\n", s.PhoneNumber)
	fmt.Fprintf(tw, "Established:\t%s\n", s.Established)
	fmt.Fprintf(tw, "Floor Area:\t%s\n", s.FloorArea)
	return tw.Flush()
}

func printProducts(w io.Writer, products []*domproduct.Product, counts table.Counts) error {
	if flagJSON {
		return writeJSON(w, products)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTATUS\tRATING\tCOUNTRY OF ORIGIN\tPROD. COMPANY")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s USD\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, formatFloat(p.Price), p.Status, formatFloat(p.Rating), p.MadeIn, p.ProductionCompanyName)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Shown: %d  All: %d  Ok: %d  Storage: %d  Out of Stock: %d\n",
		len(products), counts.Total, counts.OK, counts.Storage, counts.OutOfStock)
	return err
}

func printProduct(w io.Writer, p *domproduct.Product) error {
	if flagJSON {
		return writeJSON(w, p)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
	fmt.Fprintf(tw, "Store:\t%s\n", p.StoreID)
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Price:\t%s USD\n", formatFloat(p.Price))
	fmt.Fprintf(tw, "Specs:\t%s\n", p.Specs)
	fmt.Fprintf(tw, "Supplier Info:\t%s\n", p.SupplierInfo)
	fmt.Fprintf(tw, "Country of origin:\t%s\n", p.MadeIn)
	fmt.Fprintf(tw, "Prod. company:\t%s\n", p.ProductionCompanyName)
	fmt.Fprintf(tw, "Rating:\t%s\n", formatFloat(p.Rating))
	fmt.Fprintf(tw, "Status:\t%s\n", p.Status)
	return tw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
