// Package repository contains data access logic separated from HTTP
// handlers. Sentinel errors defined here let higher layers distinguish
// failure scenarios: a missing row is a client-visible 404, anything else is
// an engine-level failure that propagates to the boundary as a server error.
package repository

import "errors"

// ErrTourNotFound is returned when no tour row exists for a requested id.
// Handlers should translate this into an HTTP 404 response. It is also the
// result of the existence check performed before price updates and deletes.
var ErrTourNotFound = errors.New("tour not found")
