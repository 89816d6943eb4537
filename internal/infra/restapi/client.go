package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	domproduct "example.com/storeman/internal/domain/product"
	domstore "example.com/storeman/internal/domain/store"
)

const (
	storesPath   = "Stores"
	productsPath = "rel_Products"

	contentTypeJSON = "application/json"
)

var (
	listHeaders  = map[string]string{"Content-Type": contentTypeJSON}
	readHeaders  = map[string]string{"Accept": contentTypeJSON}
	writeHeaders = map[string]string{"Content-Type": contentTypeJSON, "Accept": contentTypeJSON}
)

// Client talks to the store API: /Stores and /Stores/{id}/rel_Products.
type Client struct {
	baseURL    string
	dispatcher *Dispatcher
}

func NewClient(baseURL string, d *Dispatcher) *Client {
	if d == nil {
		d = NewDispatcher()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		dispatcher: d,
	}
}

func (c *Client) storesURL() string {
	return c.baseURL + "/" + storesPath
}

func (c *Client) storeURL(storeID string) string {
	return c.storesURL() + "/" + url.PathEscape(storeID)
}

func (c *Client) productsURL(storeID string) string {
	return c.storeURL(storeID) + "/" + productsPath
}

func (c *Client) productURL(storeID, productID string) string {
	return c.productsURL(storeID) + "/" + url.PathEscape(productID)
}

// ListStores lists every store, or only those whose Name, Address or
// FloorArea contains query when query is not empty.
func (c *Client) ListStores(ctx context.Context, query string) ([]*domstore.Store, error) {
	target := c.storesURL()
	if query != "" {
		q, err := filterQuery(storeFilter(query))
		if err != nil {
			return nil, fmt.Errorf("encode store filter: %w", err)
		}
		target += q
	}

	resp, err := c.dispatcher.Send(ctx, http.MethodGet, target, nil, listHeaders)
	if err != nil {
		return nil, err
	}
	stores := []*domstore.Store{}
	if err := resp.Decode(&stores); err != nil {
		return nil, fmt.Errorf("decode stores: %w", err)
	}
	return stores, nil
}

func (c *Client) GetStore(ctx context.Context, storeID string) (*domstore.Store, error) {
	resp, err := c.dispatcher.Send(ctx, http.MethodGet, c.storeURL(storeID), nil, readHeaders)
	if err != nil {
		return nil, err
	}
	var s domstore.Store
	if err := resp.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	return &s, nil
}

func (c *Client) CreateStore(ctx context.Context, data *domstore.Store) (*domstore.Store, error) {
	resp, err := c.dispatcher.Send(ctx, http.MethodPost, c.storesURL(), data, writeHeaders)
	if err != nil {
		return nil, err
	}
	created := *data
	if err := resp.Decode(&created); err != nil {
		return nil, fmt.Errorf("decode created store: %w", err)
	}
	return &created, nil
}

// DeleteStore removes only the store record; see DeleteProducts for its
// products.
func (c *Client) DeleteStore(ctx context.Context, storeID string) error {
	_, err := c.dispatcher.Send(ctx, http.MethodDelete, c.storeURL(storeID), nil, readHeaders)
	return err
}

// ListProducts lists the products of a store. A non-empty status is
// matched exactly by the server.
func (c *Client) ListProducts(ctx context.Context, storeID string, status domproduct.Status) ([]*domproduct.Product, error) {
	target := c.productsURL(storeID)
	if status != "" {
		q, err := filterQuery(productFilter(status))
		if err != nil {
			return nil, fmt.Errorf("encode product filter: %w", err)
		}
		target += q
	}

	resp, err := c.dispatcher.Send(ctx, http.MethodGet, target, nil, listHeaders)
	if err != nil {
		return nil, err
	}
	products := []*domproduct.Product{}
	if err := resp.Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, data *domproduct.Product, storeID string) (*domproduct.Product, error) {
	resp, err := c.dispatcher.Send(ctx, http.MethodPost, c.productsURL(storeID), data, writeHeaders)
	if err != nil {
		return nil, err
	}
	created := *data
	if err := resp.Decode(&created); err != nil {
		return nil, fmt.Errorf("decode created product: %w", err)
	}
	return &created, nil
}

func (c *Client) GetProduct(ctx context.Context, productID, storeID string) (*domproduct.Product, error) {
	resp, err := c.dispatcher.Send(ctx, http.MethodGet, c.productURL(storeID, productID), nil, readHeaders)
	if err != nil {
		return nil, err
	}
	var p domproduct.Product
	if err := resp.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &p, nil
}

// UpdateProduct replaces every field of the product.
func (c *Client) UpdateProduct(ctx context.Context, data *domproduct.Product, productID, storeID string) (*domproduct.Product, error) {
	resp, err := c.dispatcher.Send(ctx, http.MethodPut, c.productURL(storeID, productID), data, writeHeaders)
	if err != nil {
		return nil, err
	}
	updated := *data
	if err := resp.Decode(&updated); err != nil {
		return nil, fmt.Errorf("decode updated product: %w", err)
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID, storeID string) error {
	_, err := c.dispatcher.Send(ctx, http.MethodDelete, c.productURL(storeID, productID), nil, readHeaders)
	return err
}

// DeleteProducts removes every product of a store in one request.
func (c *Client) DeleteProducts(ctx context.Context, storeID string) error {
	_, err := c.dispatcher.Send(ctx, http.MethodDelete, c.productsURL(storeID), nil, readHeaders)
	return err
}
