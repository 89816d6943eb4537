package store

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Store, error)
	GetByID(ctx context.Context, id string) (*Store, error)
	Create(ctx context.Context, s *Store) (*Store, error)
	Delete(ctx context.Context, id string) error
}
