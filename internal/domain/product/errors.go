package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInvalid  = errors.New("invalid product data")
	ErrInvalidStatus   = errors.New("invalid product status")
)
