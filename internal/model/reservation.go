package model

import "time"

// Reservation records a user's booking of one food table for a time
// window.  The window is the half-open interval [StartTime, EndTime()):
// a booking that starts exactly when another ends does not collide with
// it.  Only the start and the duration are persisted; the end instant is
// always derived so the two can never drift apart.  Times are naive
// local clock values matching the food place's own clock.
//
// Fields:
//  ID              – primary key identifier, immutable after creation.
//  UserID          – user who made the reservation.
//  FoodTableID     – table being reserved.
//  StartTime       – when the reservation begins.
//  DurationMinutes – booked length in minutes, between 30 and 240.
//  IsActive        – false once the reservation has been cancelled;
//                    inactive rows are ignored by conflict checks.
//  CreatedAt       – creation timestamp.
type Reservation struct {
    ID              uint64    // reservations.id
    UserID          uint64    // reservations.user_id
    FoodTableID     uint64    // reservations.food_table_id
    StartTime       time.Time // reservations.start_time
    DurationMinutes int       // reservations.duration_minutes
    IsActive        bool      // reservations.is_active
    CreatedAt       time.Time // reservations.created_at
}

// EndTime returns the derived end instant of the reservation.  It is
// computed from StartTime and DurationMinutes on every call and is
// never stored.
func (r *Reservation) EndTime() time.Time {
    return r.StartTime.Add(time.Duration(r.DurationMinutes) * time.Minute)
}
