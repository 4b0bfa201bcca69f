package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrLoadDataset    = errors.New("load dataset failed")
)
