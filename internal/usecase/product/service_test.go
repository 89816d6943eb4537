package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	dom "example.com/storeman/internal/domain/product"
)

type mockProductRepository struct {
	products   map[string]*dom.Product
	nextID     int
	created    *dom.Product
	updated    *dom.Product
	deletedID  string
	lastFilter dom.ListFilter
	lastStore  string
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[string]*dom.Product), nextID: 1}
}

func (m *mockProductRepository) List(ctx context.Context, storeID string, filter dom.ListFilter) ([]*dom.Product, error) {
	m.lastStore = storeID
	m.lastFilter = filter
	var result []*dom.Product
	for _, p := range m.products {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		cloned := *p
		result = append(result, &cloned)
	}
	return result, nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, storeID, id string) (*dom.Product, error) {
	if p, ok := m.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, dom.ErrProductNotFound
}

func (m *mockProductRepository) Create(ctx context.Context, storeID string, p *dom.Product) (*dom.Product, error) {
	p.ID = string(rune('a' + m.nextID))
	m.nextID++
	p.StoreID = storeID
	m.products[p.ID] = p
	m.created = p
	return p, nil
}

func (m *mockProductRepository) Update(ctx context.Context, storeID string, p *dom.Product) (*dom.Product, error) {
	if _, ok := m.products[p.ID]; !ok {
		return nil, dom.ErrProductNotFound
	}
	m.products[p.ID] = p
	m.updated = p
	return p, nil
}

func (m *mockProductRepository) Delete(ctx context.Context, storeID, id string) error {
	if _, ok := m.products[id]; !ok {
		return dom.ErrProductNotFound
	}
	delete(m.products, id)
	m.deletedID = id
	return nil
}

func (m *mockProductRepository) DeleteAll(ctx context.Context, storeID string) error {
	m.products = make(map[string]*dom.Product)
	return nil
}

func validInput() Input {
	return Input{
		Name:         "Kettle",
		Price:        25,
		Specs:        "1.7L",
		SupplierInfo: "ACME",
		MadeIn:       "Poland",
		Rating:       4,
		Status:       "OK",
	}
}

func TestListProducts_StatusHandling(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)

	_, err := svc.List(context.Background(), "s1", "")
	require.NoError(t, err)
	require.Equal(t, dom.ListFilter{}, repo.lastFilter)

	_, err = svc.List(context.Background(), "s1", StatusAll)
	require.NoError(t, err)
	require.Equal(t, dom.ListFilter{}, repo.lastFilter, "ALL is not sent to the server")

	_, err = svc.List(context.Background(), "s1", "STORAGE")
	require.NoError(t, err)
	require.Equal(t, dom.StatusStorage, repo.lastFilter.Status)
	require.Equal(t, "s1", repo.lastStore)

	_, err = svc.List(context.Background(), "s1", "SOLD")
	require.ErrorIs(t, err, dom.ErrInvalidStatus)
}

func TestCreateProduct_Valid(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "s1", validInput())
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "s1", p.StoreID)
	require.Equal(t, dom.StatusOK, p.Status)
	require.Equal(t, repo.created, p)
}

func TestCreateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{name: "missing name", mutate: func(in *Input) { in.Name = "" }},
		{name: "negative price", mutate: func(in *Input) { in.Price = -1 }},
		{name: "rating above five", mutate: func(in *Input) { in.Rating = 6 }},
		{name: "unknown status", mutate: func(in *Input) { in.Status = "SOLD" }},
		{name: "missing status", mutate: func(in *Input) { in.Status = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockProductRepository()
			svc := NewService(repo)

			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), "s1", in)
			require.ErrorIs(t, err, dom.ErrProductInvalid)
			require.Nil(t, repo.created)
		})
	}
}

func TestUpdateProduct_ReplacesAllFields(t *testing.T) {
	repo := newMockProductRepository()
	repo.products["p1"] = &dom.Product{ID: "p1", Name: "Old", Specs: "old specs", Rating: 2, Status: dom.StatusStorage}
	svc := NewService(repo)

	in := validInput()
	in.Specs = ""
	p, err := svc.Update(context.Background(), "s1", "p1", in)
	require.NoError(t, err)
	require.Equal(t, "p1", p.ID)
	require.Equal(t, "Kettle", repo.updated.Name)
	require.Empty(t, repo.updated.Specs, "full replace clears omitted fields")
	require.Equal(t, dom.StatusOK, repo.updated.Status)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc := NewService(newMockProductRepository())

	_, err := svc.Update(context.Background(), "s1", "missing", validInput())
	require.ErrorIs(t, err, dom.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := newMockProductRepository()
	repo.products["p1"] = &dom.Product{ID: "p1"}
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), "s1", "p1"))
	require.Equal(t, "p1", repo.deletedID)
	require.ErrorIs(t, svc.Delete(context.Background(), "s1", "p1"), dom.ErrProductNotFound)
}
