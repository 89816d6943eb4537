package table

import domproduct "example.com/storeman/internal/domain/product"

type Column string

const (
	ColumnName                  Column = "Name"
	ColumnPrice                 Column = "Price"
	ColumnSpecs                 Column = "Specs"
	ColumnSupplierInfo          Column = "SupplierInfo"
	ColumnMadeIn                Column = "MadeIn"
	ColumnProductionCompanyName Column = "ProductionCompanyName"
	ColumnRating                Column = "Rating"
)

var columns = []Column{
	ColumnName,
	ColumnPrice,
	ColumnSpecs,
	ColumnSupplierInfo,
	ColumnMadeIn,
	ColumnProductionCompanyName,
	ColumnRating,
}

var columnLabels = map[Column]string{
	ColumnName:                  "Name",
	ColumnPrice:                 "Price",
	ColumnSpecs:                 "Specs",
	ColumnSupplierInfo:          "Supplier Info",
	ColumnMadeIn:                "Country of origin",
	ColumnProductionCompanyName: "Prod. company",
	ColumnRating:                "Rating",
}

// Columns returns the sortable columns in table order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

func ParseColumn(s string) (Column, bool) {
	c := Column(s)
	_, ok := columnLabels[c]
	return c, ok
}

func (c Column) Label() string {
	return columnLabels[c]
}

func (c Column) Numeric() bool {
	return c == ColumnPrice || c == ColumnRating
}

// Expandable reports whether long values of the column are truncated
// until the cell is expanded.
func (c Column) Expandable() bool {
	return c == ColumnName || c == ColumnSpecs || c == ColumnSupplierInfo
}

// Number returns the value of a numeric column, 0 otherwise.
func (c Column) Number(p *domproduct.Product) float64 {
	switch c {
	case ColumnPrice:
		return p.Price
	case ColumnRating:
		return p.Rating
	}
	return 0
}

// Text returns the value of the column as displayed.
func (c Column) Text(p *domproduct.Product) string {
	switch c {
	case ColumnName:
		return p.Name
	case ColumnSpecs:
		return p.Specs
	case ColumnSupplierInfo:
		return p.SupplierInfo
	case ColumnMadeIn:
		return p.MadeIn
	case ColumnProductionCompanyName:
		return p.ProductionCompanyName
	}
	return ""
}
