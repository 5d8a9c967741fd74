// Package errs defines the error kinds shared by the marketplace layers.
//
// Each kind pairs a sentinel (ErrValueIsRequired, ErrObjectNotFound,
// ErrConflict, ...) with a struct that carries the offending parameter or
// object and an optional cause. Callers classify errors with errors.Is
// against the sentinel; the HTTP adapter maps every kind to one status code.
package errs
