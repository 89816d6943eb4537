package store

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	domproduct "example.com/storeman/internal/domain/product"
	dom "example.com/storeman/internal/domain/store"
)

type Service struct {
	stores   dom.Repository
	products domproduct.Repository
	validate *validator.Validate
	log      *zap.Logger
}

func NewService(stores dom.Repository, products domproduct.Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		stores:   stores,
		products: products,
		validate: validator.New(),
		log:      log,
	}
}

type CreateInput struct {
	Name        string `json:"Name" validate:"required"`
	Address     string `json:"Address" validate:"required"`
	PhoneNumber string `json:"PhoneNumber"`
	Email       string `json:"Email" validate:"omitempty,email"`
	FloorArea   string `json:"FloorArea" validate:"omitempty,numeric"`
	Established string `json:"Established"`
}

func (s *Service) List(ctx context.Context, query string) ([]*dom.Store, error) {
	return s.stores.List(ctx, dom.ListFilter{Query: query})
}

func (s *Service) Get(ctx context.Context, id string) (*dom.Store, error) {
	return s.stores.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*dom.Store, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", dom.ErrStoreInvalid, err)
	}
	return s.stores.Create(ctx, &dom.Store{
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		FloorArea:   dom.Area(in.FloorArea),
		Established: in.Established,
	})
}

// Delete removes the store's products and the store record with two
// concurrent requests. It succeeds only when both do; the deletions are
// not transactional, so a half-done deletion is reported, not undone.
func (s *Service) Delete(ctx context.Context, id string) error {
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		if err := s.products.DeleteAll(ctx, id); err != nil {
			return fmt.Errorf("delete products of store %s: %w", id, err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		if err := s.stores.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete store %s: %w", id, err)
		}
		return nil
	})

	if err := p.Wait(); err != nil {
		s.log.Error("store deletion failed", zap.String("store_id", id), zap.Error(err))
		return fmt.Errorf("%w: %w", dom.ErrStoreDeleteFailed, err)
	}
	s.log.Info("store deleted", zap.String("store_id", id))
	return nil
}
