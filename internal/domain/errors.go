package domain

import "errors"

var (
	ErrUserExists  = errors.New("user already exists")
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidDate = errors.New("invalid date")
	ErrNotObject   = errors.New("body must be a JSON object")
)
