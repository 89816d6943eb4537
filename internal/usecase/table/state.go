package table

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	domproduct "example.com/storeman/internal/domain/product"
)

// Cell identifies one expandable cell of the table.
type Cell struct {
	ProductID string
	Column    Column
}

func (c Cell) MarshalText() ([]byte, error) {
	return []byte(string(c.Column) + ":" + c.ProductID), nil
}

func (c *Cell) UnmarshalText(b []byte) error {
	col, id, ok := strings.Cut(string(b), ":")
	if !ok {
		return fmt.Errorf("cell %q: want <column>:<product id>", b)
	}
	parsed, ok := ParseColumn(col)
	if !ok || !parsed.Expandable() {
		return fmt.Errorf("cell %q: column %q is not expandable", b, col)
	}
	*c = Cell{ProductID: id, Column: parsed}
	return nil
}

// State is the selection of the product table: the selected store, its
// product snapshot and the way it is filtered, searched and sorted.
type State struct {
	StoreID  string                `json:"storeId"`
	Products []*domproduct.Product `json:"-"`
	Status   string                `json:"status"`
	Search   string                `json:"search"`
	Sort     Sort                  `json:"sort"`
	Expanded map[Cell]bool         `json:"expanded,omitempty"`
}

func NewState(storeID string, products []*domproduct.Product) State {
	return State{StoreID: storeID, Products: products, Status: StatusAll}
}

// SelectStore switches to another store and drops every per-store choice.
func (s *State) SelectStore(storeID string, products []*domproduct.Product) {
	*s = NewState(storeID, products)
}

// SetProducts replaces the collection and clears the sort column.
func (s *State) SetProducts(products []*domproduct.Product) {
	s.Products = products
	s.Sort = Sort{}
}

func (s *State) FilterByStatus(status string) {
	if status == "" {
		status = StatusAll
	}
	s.Status = status
}

func (s *State) FilterBySearch(query string) {
	s.Search = query
}

func (s *State) ToggleSort(col Column) {
	s.Sort = s.Sort.Toggle(col)
}

func (s *State) ToggleExpand(productID string, col Column) {
	if !col.Expandable() {
		return
	}
	cell := Cell{ProductID: productID, Column: col}
	if s.Expanded[cell] {
		delete(s.Expanded, cell)
		return
	}
	if s.Expanded == nil {
		s.Expanded = make(map[Cell]bool)
	}
	s.Expanded[cell] = true
}

func (s State) IsExpanded(productID string, col Column) bool {
	return s.Expanded[Cell{ProductID: productID, Column: col}]
}

// Rows returns the products to display: those matching both the status
// filter and the search, in sort order.
func (s State) Rows() []*domproduct.Product {
	rows := FilterBySearch(FilterByStatus(s.Products, s.Status), s.Search)
	if !s.Sort.Active() {
		return slices.Clone(rows)
	}
	return SortBy(rows, s.Sort.Column, s.Sort.Direction)
}

// Counts is computed over the whole collection, ignoring filter and search.
func (s State) Counts() Counts {
	return CountByStatus(s.Products)
}

// Query parameter names used by Values and FromValues.
const (
	ParamStatus = "status"
	ParamSearch = "search"
	ParamSort   = "sort"
	ParamDir    = "dir"
	ParamOpen   = "open"
)

// Values encodes everything but the store and its products.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Status != "" && s.Status != StatusAll {
		v.Set(ParamStatus, s.Status)
	}
	if s.Search != "" {
		v.Set(ParamSearch, s.Search)
	}
	if s.Sort.Active() {
		v.Set(ParamSort, string(s.Sort.Column))
		v.Set(ParamDir, string(s.Sort.Direction))
	}
	cells := make([]string, 0, len(s.Expanded))
	for c := range s.Expanded {
		b, _ := c.MarshalText()
		cells = append(cells, string(b))
	}
	slices.Sort(cells)
	for _, c := range cells {
		v.Add(ParamOpen, c)
	}
	return v
}

// FromValues decodes a state written by Values. Unknown values fall back
// to the defaults instead of failing.
func FromValues(storeID string, v url.Values) State {
	s := NewState(storeID, nil)

	switch status := v.Get(ParamStatus); {
	case status == StatusAll:
	case domproduct.Status(status).Valid():
		s.Status = status
	}
	s.Search = v.Get(ParamSearch)

	if col, ok := ParseColumn(v.Get(ParamSort)); ok {
		dir := Direction(v.Get(ParamDir))
		if dir != Desc {
			dir = Asc
		}
		s.Sort = Sort{Column: col, Direction: dir}
	}

	for _, raw := range v[ParamOpen] {
		var c Cell
		if err := c.UnmarshalText([]byte(raw)); err != nil {
			continue
		}
		s.ToggleExpand(c.ProductID, c.Column)
	}
	return s
}

// With returns the query string of s after apply has been run on a copy.
func (s State) With(apply func(*State)) string {
	next := s
	next.Expanded = make(map[Cell]bool, len(s.Expanded))
	for k, v := range s.Expanded {
		next.Expanded[k] = v
	}
	apply(&next)
	if enc := next.Values().Encode(); enc != "" {
		return "?" + enc
	}
	return ""
}
