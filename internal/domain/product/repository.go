package product

import "context"

type Repository interface {
	List(ctx context.Context, storeID string, filter ListFilter) ([]*Product, error)
	GetByID(ctx context.Context, storeID, id string) (*Product, error)
	Create(ctx context.Context, storeID string, p *Product) (*Product, error)
	Update(ctx context.Context, storeID string, p *Product) (*Product, error)
	Delete(ctx context.Context, storeID, id string) error
	DeleteAll(ctx context.Context, storeID string) error
}
