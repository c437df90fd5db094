package repository

import "errors"

// ErrNotFound is returned when no product with the requested id exists.
var ErrNotFound = errors.New("producto no encontrado")

// ErrConstraint is returned when a record violates the productos schema
// (missing required field or an estado outside the allowed pair).
var ErrConstraint = errors.New("registro invalido")
