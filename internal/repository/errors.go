// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrBookingNotFound lets the status update handler answer
// 404 instead of treating a missing row as a storage failure.
package repository

import "errors"

// ErrBookingNotFound is returned when an operation references a booking id
// that does not exist. Handlers should translate this into an HTTP 404
// response.
var ErrBookingNotFound = errors.New("booking not found")
