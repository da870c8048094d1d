package repository

import "errors"

// ErrNotFound is returned when a requested contact does not exist in the
// database. Handlers match it with errors.Is to produce a 404.
var ErrNotFound = errors.New("not found")
