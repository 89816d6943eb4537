package store

import "errors"

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrStoreInvalid      = errors.New("invalid store data")
	ErrStoreDeleteFailed = errors.New("store deletion failed")
)
