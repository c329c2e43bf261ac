package repository

import "errors"

// ErrDuplicate is returned when an insert violates a uniqueness constraint
// (product name, user login, public token). Callers decide whether that is a
// conflict to surface or a race to recover from.
var ErrDuplicate = errors.New("duplicate key")
