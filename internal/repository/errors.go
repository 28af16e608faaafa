// Package repository implements raw-SQL data access for the ticketing API.
// Sentinel errors defined here let handlers map store failures onto HTTP
// status codes without inspecting driver error strings themselves.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when an identifier does not resolve to a row.
// Handlers translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when signup collides with an existing
// account email. Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrInsufficientStock is returned when a purchase asks for more tickets
// than are available. The conditional decrement never lets `available`
// go negative. Handlers translate this into HTTP 409.
var ErrInsufficientStock = errors.New("insufficient tickets available")

// isDuplicateKey detects MySQL error 1062 (duplicate entry) without
// importing driver-specific error types.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
