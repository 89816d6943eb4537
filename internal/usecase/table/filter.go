package table

import (
	"strings"

	domproduct "example.com/storeman/internal/domain/product"
)

// StatusAll disables the status filter.
const StatusAll = "ALL"

// FilterByStatus keeps products whose Status equals status. ALL and the
// empty string keep everything.
func FilterByStatus(products []*domproduct.Product, status string) []*domproduct.Product {
	if status == "" || status == StatusAll {
		return products
	}
	out := make([]*domproduct.Product, 0, len(products))
	for _, p := range products {
		if string(p.Status) == status {
			out = append(out, p)
		}
	}
	return out
}

// FilterBySearch keeps products whose Name, Specs or SupplierInfo contain
// query, ignoring case.
func FilterBySearch(products []*domproduct.Product, query string) []*domproduct.Product {
	if query == "" {
		return products
	}
	needle := strings.ToLower(query)
	out := make([]*domproduct.Product, 0, len(products))
	for _, p := range products {
		if matches(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p *domproduct.Product, needle string) bool {
	for _, field := range []string{p.Name, p.Specs, p.SupplierInfo} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

type Counts struct {
	Total      int
	OK         int
	Storage    int
	OutOfStock int
}

// For returns the count shown on the filter button of status.
func (c Counts) For(status string) int {
	switch domproduct.Status(status) {
	case domproduct.StatusOK:
		return c.OK
	case domproduct.StatusStorage:
		return c.Storage
	case domproduct.StatusOutOfStock:
		return c.OutOfStock
	}
	return c.Total
}

func CountByStatus(products []*domproduct.Product) Counts {
	c := Counts{Total: len(products)}
	for _, p := range products {
		switch p.Status {
		case domproduct.StatusOK:
			c.OK++
		case domproduct.StatusStorage:
			c.Storage++
		case domproduct.StatusOutOfStock:
			c.OutOfStock++
		}
	}
	return c
}
