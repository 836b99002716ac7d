package catalog

import "errors"

var (
	ErrInvalidItem   = errors.New("invalid catalog item")
	ErrDuplicateName = errors.New("duplicate item name")
	ErrEmptySeed     = errors.New("catalog seed is empty")
)
