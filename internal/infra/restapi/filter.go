package restapi

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"

	domproduct "example.com/storeman/internal/domain/product"
)

// storeSearchFields are matched case-insensitively by a store search.
var storeSearchFields = []string{"Name", "Address", "FloorArea"}

// storeFilter builds {"where":{"or":[{"<field>":{"ilike":"%q%"}},...]}}.
func storeFilter(query string) map[string]any {
	pattern := "%" + query + "%"
	or := make([]map[string]any, 0, len(storeSearchFields))
	for _, field := range storeSearchFields {
		or = append(or, map[string]any{field: map[string]string{"ilike": pattern}})
	}
	return map[string]any{"where": map[string]any{"or": or}}
}

func productFilter(status domproduct.Status) map[string]any {
	return map[string]any{"where": map[string]any{"Status": string(status)}}
}

// filterQuery renders a filter as the value of the ?filter= parameter.
func filterQuery(filter any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(filter); err != nil {
		return "", err
	}
	return "?filter=" + encodeURIComponent(strings.TrimSuffix(buf.String(), "\n")), nil
}

// encodeURIComponent escapes s for use as a query value, encoding spaces
// as %20 rather than '+'.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
