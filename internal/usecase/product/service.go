package product

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	dom "example.com/storeman/internal/domain/product"
)

// StatusAll lists products regardless of status.
const StatusAll = "ALL"

type Service struct {
	repo     dom.Repository
	validate *validator.Validate
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

type Input struct {
	Name                  string  `json:"Name" validate:"required"`
	Price                 float64 `json:"Price" validate:"gte=0"`
	Specs                 string  `json:"Specs"`
	SupplierInfo          string  `json:"SupplierInfo"`
	MadeIn                string  `json:"MadeIn"`
	ProductionCompanyName string  `json:"ProductionCompanyName"`
	Rating                float64 `json:"Rating" validate:"gte=0,lte=5"`
	Status                string  `json:"Status" validate:"required,oneof=OK STORAGE OUT_OF_STOCK"`
}

func (in Input) product(id string) *dom.Product {
	return &dom.Product{
		ID:                    id,
		Name:                  in.Name,
		Price:                 in.Price,
		Specs:                 in.Specs,
		SupplierInfo:          in.SupplierInfo,
		MadeIn:                in.MadeIn,
		ProductionCompanyName: in.ProductionCompanyName,
		Rating:                in.Rating,
		Status:                dom.Status(in.Status),
	}
}

// List returns the store's products. status may be empty, ALL, or one of
// the product statuses.
func (s *Service) List(ctx context.Context, storeID, status string) ([]*dom.Product, error) {
	var filter dom.ListFilter
	if status != "" && status != StatusAll {
		st, err := dom.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = st
	}
	return s.repo.List(ctx, storeID, filter)
}

func (s *Service) Get(ctx context.Context, storeID, id string) (*dom.Product, error) {
	return s.repo.GetByID(ctx, storeID, id)
}

func (s *Service) Create(ctx context.Context, storeID string, in Input) (*dom.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", dom.ErrProductInvalid, err)
	}
	return s.repo.Create(ctx, storeID, in.product(""))
}

// Update replaces every field of the product with in.
func (s *Service) Update(ctx context.Context, storeID, id string, in Input) (*dom.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", dom.ErrProductInvalid, err)
	}
	return s.repo.Update(ctx, storeID, in.product(id))
}

func (s *Service) Delete(ctx context.Context, storeID, id string) error {
	return s.repo.Delete(ctx, storeID, id)
}
