package render

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	domproduct "example.com/storeman/internal/domain/product"
	domstore "example.com/storeman/internal/domain/store"
	"example.com/storeman/internal/usecase/table"
)

// Layouts tried, in order, when reading an Established date.
var establishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

const ellipsis = "…"

type storeItem struct {
	ID        string
	Name      string
	Address   string
	FloorArea string
	Href      string
}

type storeInfo struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	Established string
	FloorArea   string
	Href        string
}

type filterButton struct {
	Status string
	Label  string
	Icon   string
	Count  int
	Active bool
	Href   string
}

type columnHeader struct {
	Column    string
	Label     string
	Class     string
	Indicator string
	Href      string
}

type productCell struct {
	Column     string
	Class      string
	Text       string
	Title      string
	USD        bool
	Expandable bool
	Expanded   bool
	Href       string
}

type productRow struct {
	ID           string
	Cells        []productCell
	DeleteAction string
}

type detailView struct {
	Store     storeInfo
	Filters   []filterButton
	Headers   []columnHeader
	Rows      []productRow
	Search    string
	StateJSON string
}

var columnClasses = map[table.Column]string{
	table.ColumnName:                  "name",
	table.ColumnPrice:                 "price",
	table.ColumnSpecs:                 "specs",
	table.ColumnSupplierInfo:          "supplier-info",
	table.ColumnMadeIn:                "country",
	table.ColumnProductionCompanyName: "prod-company",
	table.ColumnRating:                "rating",
}

var filterLabels = []struct {
	status string
	label  string
	icon   string
}{
	{table.StatusAll, "All", ""},
	{string(domproduct.StatusOK), "Ok", "ok-status-icon"},
	{string(domproduct.StatusStorage), "Storage", "storage-status-icon"},
	{string(domproduct.StatusOutOfStock), "Out of Stock", "out-status-icon"},
}

// StoreHref is the console path of a store detail page.
func StoreHref(id string) string {
	return "/stores/" + url.PathEscape(id)
}

// ProductHref is the console path of one product of a store.
func ProductHref(storeID, productID string) string {
	return StoreHref(storeID) + "/products/" + url.PathEscape(productID)
}

func (r *Renderer) storeItems(stores []*domstore.Store) []storeItem {
	items := make([]storeItem, 0, len(stores))
	for _, s := range stores {
		items = append(items, storeItem{
			ID:        s.ID,
			Name:      s.Name,
			Address:   s.Address,
			FloorArea: s.FloorArea.String(),
			Href:      StoreHref(s.ID),
		})
	}
	return items
}

func (r *Renderer) storeInfo(s *domstore.Store) storeInfo {
	return storeInfo{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
		Established: r.formatDate(s.Established),
		FloorArea:   s.FloorArea.String(),
		Href:        StoreHref(s.ID),
	}
}

// formatDate renders v with the configured layout; values that do not
// parse are shown as given.
func (r *Renderer) formatDate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	for _, layout := range establishedLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(r.dateLayout)
		}
	}
	return v
}

func (r *Renderer) filterButtons(st table.State) []filterButton {
	counts := st.Counts()
	active := st.Status
	if active == "" {
		active = table.StatusAll
	}
	base := StoreHref(st.StoreID)
	out := make([]filterButton, 0, len(filterLabels))
	for _, f := range filterLabels {
		status := f.status
		out = append(out, filterButton{
			Status: status,
			Label:  f.label,
			Icon:   f.icon,
			Count:  counts.For(status),
			Active: status == active,
			Href:   base + st.With(func(n *table.State) { n.FilterByStatus(status) }),
		})
	}
	return out
}

func (r *Renderer) columnHeaders(st table.State) []columnHeader {
	base := StoreHref(st.StoreID)
	cols := table.Columns()
	out := make([]columnHeader, 0, len(cols))
	for _, col := range cols {
		h := columnHeader{
			Column: string(col),
			Label:  col.Label(),
			Class:  columnClasses[col],
			Href:   base + st.With(func(n *table.State) { n.ToggleSort(col) }),
		}
		if dir := st.Sort.Indicator(col); dir != "" {
			h.Indicator = "js-sort-icon-" + string(dir)
		}
		out = append(out, h)
	}
	return out
}

func (r *Renderer) productRows(st table.State) []productRow {
	base := StoreHref(st.StoreID)
	rows := st.Rows()
	out := make([]productRow, 0, len(rows))
	for _, p := range rows {
		row := productRow{
			ID:           p.ID,
			DeleteAction: ProductHref(st.StoreID, p.ID) + "/delete",
		}
		for _, col := range table.Columns() {
			c := productCell{Column: string(col), Class: columnClasses[col]}
			switch {
			case col.Numeric():
				c.Text = formatNumber(col.Number(p))
				c.USD = col == table.ColumnPrice
			case col.Expandable():
				full := col.Text(p)
				c.Expandable = true
				c.Expanded = st.IsExpanded(p.ID, col)
				c.Title = full
				c.Text = full
				if !c.Expanded {
					c.Text = r.truncate(full)
				}
				id := p.ID
				c.Href = base + st.With(func(n *table.State) { n.ToggleExpand(id, col) })
			default:
				c.Text = col.Text(p)
			}
			row.Cells = append(row.Cells, c)
		}
		out = append(out, row)
	}
	return out
}

func (r *Renderer) truncate(s string) string {
	if utf8.RuneCountInString(s) <= r.truncateAt {
		return s
	}
	return string([]rune(s)[:r.truncateAt]) + ellipsis
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
