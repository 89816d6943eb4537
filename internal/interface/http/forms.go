package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domproduct "example.com/storeman/internal/domain/product"
	productuc "example.com/storeman/internal/usecase/product"
	storeuc "example.com/storeman/internal/usecase/store"
)

func isJSON(v string) bool {
	return strings.Contains(strings.ToLower(v), "application/json")
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func parseForm(r *http.Request) (url.Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return r.PostForm, nil
}

func decodeStoreInput(r *http.Request) (storeuc.CreateInput, error) {
	var in storeuc.CreateInput
	if isJSON(r.Header.Get("Content-Type")) {
		return in, decodeJSON(r, &in)
	}
	form, err := parseForm(r)
	if err != nil {
		return in, err
	}
	in = storeuc.CreateInput{
		Name:        strings.TrimSpace(form.Get("Name")),
		Address:     strings.TrimSpace(form.Get("Address")),
		PhoneNumber: strings.TrimSpace(form.Get("PhoneNumber")),
		Email:       strings.TrimSpace(form.Get("Email")),
		FloorArea:   strings.TrimSpace(form.Get("FloorArea")),
		Established: strings.TrimSpace(form.Get("Established")),
	}
	return in, nil
}

func decodeProductInput(r *http.Request) (productuc.Input, error) {
	var in productuc.Input
	if isJSON(r.Header.Get("Content-Type")) {
		return in, decodeJSON(r, &in)
	}
	form, err := parseForm(r)
	if err != nil {
		return in, err
	}
	price, err := parseNumber(form, "Price")
	if err != nil {
		return in, err
	}
	rating, err := parseNumber(form, "Rating")
	if err != nil {
		return in, err
	}
	in = productuc.Input{
		Name:                  strings.TrimSpace(form.Get("Name")),
		Price:                 price,
		Specs:                 strings.TrimSpace(form.Get("Specs")),
		SupplierInfo:          strings.TrimSpace(form.Get("SupplierInfo")),
		MadeIn:                strings.TrimSpace(form.Get("MadeIn")),
		ProductionCompanyName: strings.TrimSpace(form.Get("ProductionCompanyName")),
		Rating:                rating,
		Status:                strings.TrimSpace(form.Get("Status")),
	}
	return in, nil
}

// parseNumber reads an optional numeric form field. Empty means 0.
func parseNumber(form url.Values, key string) (float64, error) {
	v := strings.TrimSpace(form.Get(key))
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domproduct.ErrProductInvalid, key)
	}
	return f, nil
}
