package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/storeman/internal/domain/product"
	domstore "example.com/storeman/internal/domain/store"
	"example.com/storeman/internal/usecase/table"
)

func testStore() *domstore.Store {
	return &domstore.Store{
		ID:          "s1",
		Name:        "Corner Shop",
		Address:     "1 Main St",
		PhoneNumber: "555-0100",
		Email:       "shop@example.com",
		FloorArea:   "120",
		Established: "2020-01-15T00:00:00.000Z",
	}
}

func testState() table.State {
	return table.NewState("s1", []*domproduct.Product{
		{ID: "1", Name: "Kettle", Price: 5, Specs: strings.Repeat("a", 45), SupplierInfo: "Acme", MadeIn: "DE", Rating: 4, Status: domproduct.StatusOK},
		{ID: "2", Name: "Toaster", Price: 2.5, Specs: "two slots", SupplierInfo: "Globex", Rating: 5, Status: domproduct.StatusStorage},
		{ID: "3", Name: "Mixer", Price: 12, Status: domproduct.StatusOK},
	})
}

func TestStoreList(t *testing.T) {
	r := New("", 0)

	out, err := r.StoreList([]*domstore.Store{testStore()})
	require.NoError(t, err)
	require.Contains(t, string(out), `data-store-id="s1"`)
	require.Contains(t, string(out), "Corner Shop")
	require.Contains(t, string(out), `href="/stores/s1"`)
	require.NotContains(t, string(out), "No matching stores found.")

	out, err = r.StoreList(nil)
	require.NoError(t, err)
	require.Contains(t, string(out), "No matching stores found.")
}

func TestStoreInfoFormatsDate(t *testing.T) {
	r := New("", 0)

	out, err := r.StoreInfo(testStore())
	require.NoError(t, err)
	require.Contains(t, string(out), "1/15/2020")
	require.Contains(t, string(out), "shop@example.com")

	s := testStore()
	s.Established = "sometime in spring"
	out, err = r.StoreInfo(s)
	require.NoError(t, err)
	require.Contains(t, string(out), "sometime in spring")

	out, err = New("2006-01-02", 0).StoreInfo(testStore())
	require.NoError(t, err)
	require.Contains(t, string(out), "2020-01-15")
}

func TestFilterButtons(t *testing.T) {
	r := New("", 0)
	st := testState()
	st.FilterByStatus("OK")

	out, err := r.FilterButtons(st)
	require.NoError(t, err)
	html := string(out)
	for _, status := range []string{"ALL", "OK", "STORAGE", "OUT_OF_STOCK"} {
		require.Contains(t, html, `data-status="`+status+`"`)
	}
	require.Contains(t, html, "<p>3</p><span>All</span>")
	require.Contains(t, html, "<p>2</p><span>Ok</span>")
	require.Contains(t, html, "<p>0</p><span>Out of Stock</span>")
	require.Equal(t, 1, strings.Count(html, "filter-buttons__filter-button--active"))
}

func TestColumnHeadersShowIndicator(t *testing.T) {
	r := New("", 0)
	st := testState()

	out, err := r.ColumnHeaders(st)
	require.NoError(t, err)
	require.Equal(t, 7, strings.Count(string(out), "js-sort-header"))
	require.NotContains(t, string(out), "js-sort-icon-asc")
	require.Contains(t, string(out), `href="/stores/s1?dir=asc&amp;sort=Price"`)

	st.ToggleSort(table.ColumnPrice)
	out, err = r.ColumnHeaders(st)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(out), "js-sort-icon-asc"))
	require.Contains(t, string(out), `href="/stores/s1?dir=desc&amp;sort=Price"`)

	st.ToggleSort(table.ColumnPrice)
	out, err = r.ColumnHeaders(st)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(out), "js-sort-icon-desc"))
}

func TestProductRows(t *testing.T) {
	r := New("", 0)
	st := testState()
	st.FilterByStatus("OK")
	st.ToggleSort(table.ColumnPrice)
	st.ToggleSort(table.ColumnPrice)

	out, err := r.ProductRows(st)
	require.NoError(t, err)
	html := string(out)

	require.Equal(t, 2, strings.Count(html, `class="table-row-product"`))
	require.Less(t, strings.Index(html, "Mixer"), strings.Index(html, "Kettle"))
	require.NotContains(t, html, "Toaster")
	require.Contains(t, html, `<p>5<span class="usd-span">USD</span></p>`)
	require.Contains(t, html, `class="edit-product-icon" data-product-id="1"`)
	require.Contains(t, html, `action="/stores/s1/products/1/delete"`)

	require.Contains(t, html, strings.Repeat("a", 40)+"…")
	require.Contains(t, html, `title="`+strings.Repeat("a", 45)+`"`)
}

func TestProductRowsExpandedCell(t *testing.T) {
	r := New("", 10)
	st := testState()
	st.ToggleExpand("1", table.ColumnSpecs)

	out, err := r.ProductRows(st)
	require.NoError(t, err)
	html := string(out)
	require.Contains(t, html, ">"+strings.Repeat("a", 45)+"<")
	require.Contains(t, html, "js-expanded")
	require.Contains(t, html, "Globex")
	require.Contains(t, html, "two slots")
}

func TestRenderingEscapesValues(t *testing.T) {
	r := New("", 0)
	st := table.NewState("s1", []*domproduct.Product{
		{ID: "x", Name: `<script>alert(1)</script>`, Status: domproduct.StatusOK},
	})

	out, err := r.ProductRows(st)
	require.NoError(t, err)
	require.NotContains(t, string(out), "<script>")
	require.Contains(t, string(out), "&lt;script&gt;alert(1)&lt;/script&gt;")

	s := testStore()
	s.Name = `"><img src=x onerror=alert(1)>`
	out, err = r.StoreList([]*domstore.Store{s})
	require.NoError(t, err)
	require.NotContains(t, string(out), "<img")
}

func TestStoreDetailPage(t *testing.T) {
	r := New("", 0)
	var buf bytes.Buffer

	err := r.StoreDetailPage(&buf, []*domstore.Store{testStore()}, "corner", testStore(), testState())
	require.NoError(t, err)
	html := buf.String()
	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, `<h3>Corner Shop</h3>`)
	require.Contains(t, html, `value="corner"`)
	require.Contains(t, html, `id="products-table-id"`)
	require.Contains(t, html, `data-state=`)
	require.Contains(t, html, `action="/stores/s1/delete"`)
	require.Contains(t, html, `action="/stores/s1/products"`)
}

func TestStorePageWithoutSelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New("", 0).StorePage(&buf, nil, ""))
	require.Contains(t, buf.String(), "No matching stores found.")
	require.Contains(t, buf.String(), "Select a store")
	require.NotContains(t, buf.String(), "data-state")
}

func TestAlertPage(t *testing.T) {
	var buf bytes.Buffer
	err := New("", 0).AlertPage(&buf, Alert{
		Title:   "Delete failed",
		Message: "The store could not be deleted.",
		Detail:  `{"error":"boom"}`,
	})
	require.NoError(t, err)
	html := buf.String()
	require.Contains(t, html, `role="alertdialog"`)
	require.Contains(t, html, "Delete failed")
	require.Contains(t, html, `href="/"`)
	require.NotContains(t, html, "stores-list")
}
