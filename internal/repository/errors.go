package repository

import "errors"

var (
	ErrInvalidID       = errors.New("malformed id")
	ErrBookNotFound    = errors.New("book not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrAddressNotFound = errors.New("address not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)
