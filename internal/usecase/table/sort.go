package table

import (
	"cmp"
	"slices"
	"strings"

	domproduct "example.com/storeman/internal/domain/product"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is the active sort of the table. The zero value means unsorted;
// Direction means nothing while Column is empty.
type Sort struct {
	Column    Column
	Direction Direction
}

func (s Sort) Active() bool {
	return s.Column != ""
}

// Toggle returns the sort after activating col: the same column cycles
// asc, desc, unsorted; another column always starts at asc.
func (s Sort) Toggle(col Column) Sort {
	if s.Column != col {
		return Sort{Column: col, Direction: Asc}
	}
	switch s.Direction {
	case Asc:
		return Sort{Column: col, Direction: Desc}
	default:
		return Sort{}
	}
}

// Indicator returns the direction shown on col's header, or "".
func (s Sort) Indicator(col Column) Direction {
	if !s.Active() || s.Column != col {
		return ""
	}
	return s.Direction
}

// SortBy returns a copy of products ordered by col. Equal keys keep their
// relative order. Text columns compare byte-wise and case-sensitively.
func SortBy(products []*domproduct.Product, col Column, dir Direction) []*domproduct.Product {
	out := slices.Clone(products)
	if col == "" {
		return out
	}
	compare := func(a, b *domproduct.Product) int {
		if col.Numeric() {
			return cmp.Compare(col.Number(a), col.Number(b))
		}
		return strings.Compare(col.Text(a), col.Text(b))
	}
	slices.SortStableFunc(out, func(a, b *domproduct.Product) int {
		if dir == Desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}
