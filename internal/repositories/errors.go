package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Services also use it for ownership failures so callers cannot tell a
// foreign record apart from a missing one.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert collides with a unique
// constraint, e.g. a concurrent registration taking the same username.
var ErrDuplicate = errors.New("duplicate record")
