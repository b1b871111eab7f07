// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a table reservation is
// successfully created.  It carries enough information for downstream
// consumers to log, notify, or trigger analytics without querying the
// primary database.
type ReservationConfirmedEvent struct {
    ReservationID   uint64 `json:"reservation_id"`
    UserID          uint64 `json:"user_id"`
    FoodTableID     uint64 `json:"food_table_id"`
    StartTime       string `json:"start_time"`
    EndTime         string `json:"end_time"`
    DurationMinutes int    `json:"duration_minutes"`
    ConfirmedAt     string `json:"confirmed_at"`
}
