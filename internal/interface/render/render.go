package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	domstore "example.com/storeman/internal/domain/store"
	"example.com/storeman/internal/usecase/table"
)

const (
	DefaultDateLayout = "1/2/2006"
	DefaultTruncateAt = 40
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("console").ParseFS(templateFS, "templates/*.tmpl"))

// Renderer turns stores, products and table state into HTML. Every value
// goes through html/template contextual escaping.
type Renderer struct {
	tmpl       *template.Template
	dateLayout string
	truncateAt int
}

func New(dateLayout string, truncateAt int) *Renderer {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	if truncateAt < 1 {
		truncateAt = DefaultTruncateAt
	}
	return &Renderer{tmpl: templates, dateLayout: dateLayout, truncateAt: truncateAt}
}

// Alert is a blocking error notice shown in place of the console.
type Alert struct {
	Title   string
	Message string
	Detail  string
	Back    string
}

type page struct {
	Title  string
	Query  string
	Stores []storeItem
	Detail *detailView
	Alert  *Alert
}

func (r *Renderer) StoreList(stores []*domstore.Store) (template.HTML, error) {
	return r.fragment("store-list", r.storeItems(stores))
}

func (r *Renderer) StoreHeader(s *domstore.Store) (template.HTML, error) {
	return r.fragment("store-header", r.storeInfo(s))
}

func (r *Renderer) StoreInfo(s *domstore.Store) (template.HTML, error) {
	return r.fragment("store-info", r.storeInfo(s))
}

func (r *Renderer) ActionButtons() (template.HTML, error) {
	return r.fragment("action-buttons", nil)
}

func (r *Renderer) FilterButtons(st table.State) (template.HTML, error) {
	return r.fragment("filter-buttons", r.filterButtons(st))
}

func (r *Renderer) ColumnHeaders(st table.State) (template.HTML, error) {
	return r.fragment("column-headers", r.columnHeaders(st))
}

func (r *Renderer) ProductRows(st table.State) (template.HTML, error) {
	return r.fragment("product-rows", r.productRows(st))
}

func (r *Renderer) Footer(s *domstore.Store) (template.HTML, error) {
	return r.fragment("store-footer", r.storeInfo(s))
}

// StoreDetail renders the whole detail section of s: header, info,
// filters, the product table and the footer.
func (r *Renderer) StoreDetail(s *domstore.Store, st table.State) (template.HTML, error) {
	view, err := r.detail(s, st)
	if err != nil {
		return "", err
	}
	return r.fragment("store-detail", view)
}

// StorePage writes the console with the store list and no selected store.
func (r *Renderer) StorePage(w io.Writer, stores []*domstore.Store, query string) error {
	return r.page(w, page{Title: "Stores", Query: query, Stores: r.storeItems(stores)})
}

// StoreDetailPage writes the console with s selected.
func (r *Renderer) StoreDetailPage(w io.Writer, stores []*domstore.Store, query string, s *domstore.Store, st table.State) error {
	view, err := r.detail(s, st)
	if err != nil {
		return err
	}
	return r.page(w, page{Title: s.Name, Query: query, Stores: r.storeItems(stores), Detail: &view})
}

func (r *Renderer) AlertPage(w io.Writer, a Alert) error {
	if a.Back == "" {
		a.Back = "/"
	}
	return r.page(w, page{Title: a.Title, Alert: &a})
}

func (r *Renderer) detail(s *domstore.Store, st table.State) (detailView, error) {
	raw, err := json.Marshal(st)
	if err != nil {
		return detailView{}, fmt.Errorf("encode table state: %w", err)
	}
	return detailView{
		Store:     r.storeInfo(s),
		Filters:   r.filterButtons(st),
		Headers:   r.columnHeaders(st),
		Rows:      r.productRows(st),
		Search:    st.Search,
		StateJSON: string(raw),
	}, nil
}

func (r *Renderer) page(w io.Writer, p page) error {
	if err := r.tmpl.ExecuteTemplate(w, "layout", p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
