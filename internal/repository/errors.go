// Package repository contains the data access layer.  This file defines
// error values shared across repositories so that handlers can
// distinguish failure scenarios with errors.Is instead of inspecting
// driver errors.  Duplicate-key detection is centralized here because
// every uniqueness rule in the schema surfaces as MySQL error 1062.
package repository

import (
    "errors"
    "strings"
)

// ErrConflict is returned when a create or update collides with an
// existing row, such as a second food place with the same name in one
// location.  Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// isDuplicate reports whether err is a MySQL duplicate-entry error
// (code 1062) raised by a UNIQUE constraint.
func isDuplicate(err error) bool {
    return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
