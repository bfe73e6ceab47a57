package repository

import "errors"

// ErrNotFound is returned by lookups whose target id or unique field does
// not exist. Callers test with errors.Is and decide how to surface it; the
// repositories themselves never choose an HTTP status.
var ErrNotFound = errors.New("not found")
