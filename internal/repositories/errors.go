package repositories

import "errors"

// ErrNotFound is wrapped by lookups and mutations that matched no row.
var ErrNotFound = errors.New("not found")
