package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/storeman/internal/domain/product"
	dom "example.com/storeman/internal/domain/store"
)

type mockStoreRepository struct {
	mu        sync.Mutex
	stores    map[string]*dom.Store
	created   *dom.Store
	lastQuery string
	deleteErr error
	deleted   []string
}

func newMockStoreRepository() *mockStoreRepository {
	return &mockStoreRepository{stores: make(map[string]*dom.Store)}
}

func (m *mockStoreRepository) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Store, error) {
	m.lastQuery = filter.Query
	var result []*dom.Store
	for _, s := range m.stores {
		cloned := *s
		result = append(result, &cloned)
	}
	return result, nil
}

func (m *mockStoreRepository) GetByID(ctx context.Context, id string) (*dom.Store, error) {
	if s, ok := m.stores[id]; ok {
		cloned := *s
		return &cloned, nil
	}
	return nil, dom.ErrStoreNotFound
}

func (m *mockStoreRepository) Create(ctx context.Context, s *dom.Store) (*dom.Store, error) {
	s.ID = "new-store"
	m.stores[s.ID] = s
	m.created = s
	return s, nil
}

func (m *mockStoreRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	delete(m.stores, id)
	return nil
}

type mockProductRepository struct {
	mu           sync.Mutex
	deleteAllErr error
	deletedAll   []string
}

func (m *mockProductRepository) List(ctx context.Context, storeID string, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	return nil, nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, storeID, id string) (*domproduct.Product, error) {
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepository) Create(ctx context.Context, storeID string, p *domproduct.Product) (*domproduct.Product, error) {
	return p, nil
}

func (m *mockProductRepository) Update(ctx context.Context, storeID string, p *domproduct.Product) (*domproduct.Product, error) {
	return p, nil
}

func (m *mockProductRepository) Delete(ctx context.Context, storeID, id string) error {
	return nil
}

func (m *mockProductRepository) DeleteAll(ctx context.Context, storeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteAllErr != nil {
		return m.deleteAllErr
	}
	m.deletedAll = append(m.deletedAll, storeID)
	return nil
}

func TestListStores_PassesQuery(t *testing.T) {
	stores := newMockStoreRepository()
	stores.stores["s1"] = &dom.Store{ID: "s1", Name: "Main"}
	svc := NewService(stores, &mockProductRepository{}, nil)

	result, err := svc.List(context.Background(), "mai")
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "mai", stores.lastQuery)
}

func TestCreateStore_Valid(t *testing.T) {
	stores := newMockStoreRepository()
	svc := NewService(stores, &mockProductRepository{}, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Name:        "Main",
		Address:     "1 Main St",
		Email:       "main@example.com",
		FloorArea:   "120.5",
		Established: "2020-03-01",
	})
	require.NoError(t, err)
	require.Equal(t, "new-store", created.ID)
	require.Equal(t, dom.Area("120.5"), stores.created.FloorArea)
}

func TestCreateStore_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   CreateInput
	}{
		{name: "missing name", in: CreateInput{Address: "1 Main St"}},
		{name: "missing address", in: CreateInput{Name: "Main"}},
		{name: "bad email", in: CreateInput{Name: "Main", Address: "x", Email: "nope"}},
		{name: "non numeric area", in: CreateInput{Name: "Main", Address: "x", FloorArea: "big"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := newMockStoreRepository()
			svc := NewService(stores, &mockProductRepository{}, nil)

			_, err := svc.Create(context.Background(), tt.in)
			require.ErrorIs(t, err, dom.ErrStoreInvalid)
			require.Nil(t, stores.created, "nothing should reach the repository")
		})
	}
}

func TestDeleteStore_BothSucceed(t *testing.T) {
	stores := newMockStoreRepository()
	stores.stores["s1"] = &dom.Store{ID: "s1"}
	products := &mockProductRepository{}
	svc := NewService(stores, products, nil)

	require.NoError(t, svc.Delete(context.Background(), "s1"))
	require.Equal(t, []string{"s1"}, stores.deleted)
	require.Equal(t, []string{"s1"}, products.deletedAll)
}

func TestDeleteStore_PartialFailure(t *testing.T) {
	errProducts := errors.New("products delete failed")
	errStore := errors.New("store delete failed")

	tests := []struct {
		name        string
		productsErr error
		storeErr    error
		wantErrs    []error
	}{
		{name: "products fail, store succeeds", productsErr: errProducts, wantErrs: []error{errProducts}},
		{name: "store fails, products succeed", storeErr: errStore, wantErrs: []error{errStore}},
		{name: "both fail", productsErr: errProducts, storeErr: errStore, wantErrs: []error{errProducts, errStore}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := newMockStoreRepository()
			stores.deleteErr = tt.storeErr
			products := &mockProductRepository{deleteAllErr: tt.productsErr}
			svc := NewService(stores, products, nil)

			err := svc.Delete(context.Background(), "s1")
			require.ErrorIs(t, err, dom.ErrStoreDeleteFailed)
			for _, want := range tt.wantErrs {
				require.ErrorIs(t, err, want)
			}
		})
	}
}
