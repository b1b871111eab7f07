// Package booking implements the reservation availability engine: it
// decides whether a proposed table reservation may be accepted given the
// other reservations already held on that table and the operating hours
// of the food place owning it.  All failures are expected validation
// outcomes expressed as sentinel errors so handlers can translate them
// into HTTP status codes; they are never wrapped in generic failures.
package booking

import "errors"

// Duration bounds for a single reservation, in minutes.  These limits
// also bound the scan window used by the conflict query: no reservation
// longer than MaxDurationMinutes can exist, so any row able to overlap a
// candidate starts within MaxDurationMinutes of its interval.
const (
    MinDurationMinutes = 30
    MaxDurationMinutes = 240
)

// ErrInvalidDuration is returned when the requested duration lies
// outside [MinDurationMinutes, MaxDurationMinutes].  Handlers should
// translate this into an HTTP 400 response.
var ErrInvalidDuration = errors.New("duration must be between 30 and 240 minutes")

// ErrTableNotFound is returned when the referenced food table does not
// exist.  Handlers should translate this into an HTTP 404 response.
var ErrTableNotFound = errors.New("food table not found")

// ErrTimeSlotOccupied is returned when the requested interval overlaps
// another active reservation on the same table.  It is also surfaced
// after a concurrent-write abort that persists across one retry.
// Handlers should translate this into an HTTP 409 response.
var ErrTimeSlotOccupied = errors.New("this time slot is already occupied")

// ErrOutsideOperatingHours is returned when the requested interval does
// not fit inside the food place's operating window for the day the
// reservation starts on.  Handlers should translate this into an HTTP
// 400 response.
var ErrOutsideOperatingHours = errors.New("this time slot is outside of working time")

// ErrReservationNotFound is returned by the patch path when the
// reservation does not exist or belongs to a different user.  Handlers
// should translate this into an HTTP 404 response.
var ErrReservationNotFound = errors.New("reservation not found")
