package model

import "github.com/pkg/errors"

var (
	ErrInvalidInputOrder = errors.New("notes are not sorted by start time")
	ErrValueOutOfRange   = errors.New("value out of range")
	ErrInvalidParameter  = errors.New("invalid parameter")
)
