package restapi

import (
	"context"
	"fmt"
	"net/http"

	domproduct "example.com/storeman/internal/domain/product"
	domstore "example.com/storeman/internal/domain/store"
)

// StoreRepository exposes the client as a store.Repository.
type StoreRepository struct {
	client *Client
}

func NewStoreRepository(c *Client) *StoreRepository {
	return &StoreRepository{client: c}
}

func (r *StoreRepository) List(ctx context.Context, filter domstore.ListFilter) ([]*domstore.Store, error) {
	return r.client.ListStores(ctx, filter.Query)
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*domstore.Store, error) {
	s, err := r.client.GetStore(ctx, id)
	return s, notFound(err, domstore.ErrStoreNotFound)
}

func (r *StoreRepository) Create(ctx context.Context, s *domstore.Store) (*domstore.Store, error) {
	return r.client.CreateStore(ctx, s)
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return notFound(r.client.DeleteStore(ctx, id), domstore.ErrStoreNotFound)
}

// ProductRepository exposes the client as a product.Repository.
type ProductRepository struct {
	client *Client
}

func NewProductRepository(c *Client) *ProductRepository {
	return &ProductRepository{client: c}
}

func (r *ProductRepository) List(ctx context.Context, storeID string, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	ps, err := r.client.ListProducts(ctx, storeID, filter.Status)
	return ps, notFound(err, domstore.ErrStoreNotFound)
}

func (r *ProductRepository) GetByID(ctx context.Context, storeID, id string) (*domproduct.Product, error) {
	p, err := r.client.GetProduct(ctx, id, storeID)
	return p, notFound(err, domproduct.ErrProductNotFound)
}

func (r *ProductRepository) Create(ctx context.Context, storeID string, p *domproduct.Product) (*domproduct.Product, error) {
	created, err := r.client.CreateProduct(ctx, p, storeID)
	return created, notFound(err, domstore.ErrStoreNotFound)
}

func (r *ProductRepository) Update(ctx context.Context, storeID string, p *domproduct.Product) (*domproduct.Product, error) {
	updated, err := r.client.UpdateProduct(ctx, p, p.ID, storeID)
	return updated, notFound(err, domproduct.ErrProductNotFound)
}

func (r *ProductRepository) Delete(ctx context.Context, storeID, id string) error {
	return notFound(r.client.DeleteProduct(ctx, id, storeID), domproduct.ErrProductNotFound)
}

func (r *ProductRepository) DeleteAll(ctx context.Context, storeID string) error {
	return notFound(r.client.DeleteProducts(ctx, storeID), domstore.ErrStoreNotFound)
}

// notFound tags a 404 with the domain sentinel while keeping the
// *HTTPError reachable through errors.As.
func notFound(err, sentinel error) error {
	if err == nil {
		return nil
	}
	if StatusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}
