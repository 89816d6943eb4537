package product

import "fmt"

type Product struct {
	ID                    string  `json:"id,omitempty"`
	StoreID               string  `json:"StoreId,omitempty"`
	Name                  string  `json:"Name"`
	Price                 float64 `json:"Price"`
	Specs                 string  `json:"Specs"`
	SupplierInfo          string  `json:"SupplierInfo"`
	MadeIn                string  `json:"MadeIn"`
	ProductionCompanyName string  `json:"ProductionCompanyName"`
	Rating                float64 `json:"Rating"`
	Status                Status  `json:"Status"`
}

type Status string

const (
	StatusOK         Status = "OK"
	StatusStorage    Status = "STORAGE"
	StatusOutOfStock Status = "OUT_OF_STOCK"
)

// Statuses returns the known statuses in display order.
func Statuses() []Status {
	return []Status{StatusOK, StatusStorage, StatusOutOfStock}
}

func (s Status) Valid() bool {
	switch s {
	case StatusOK, StatusStorage, StatusOutOfStock:
		return true
	}
	return false
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
	return s, nil
}

// ListFilter narrows a product listing on the server. A zero Status lists
// every product of the store.
type ListFilter struct {
	Status Status
}
