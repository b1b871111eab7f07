package booking

import (
    "context"
    "database/sql"
    "errors"
    "strings"
    "time"

    "github.com/iliyamo/food-table-reservation/internal/model"
    "github.com/iliyamo/food-table-reservation/internal/repository"
)

// Service validates and persists reservations.  Every mutation runs the
// same pipeline: duration bounds, table lookup, operating-hours lookup,
// conflict scan, window check, write.  The checks and the write share
// one transaction, and the conflict scan locks the co-table rows with
// SELECT ... FOR UPDATE, so two concurrent requests for overlapping
// slots on the same table serialize instead of double-booking.  Unrelated
// tables never contend.
type Service struct {
    DB           *sql.DB
    Tables       *repository.FoodTableRepo
    Places       *repository.FoodPlaceRepo
    Reservations *repository.ReservationRepo
}

// NewService constructs a booking Service.  All dependencies must be non-nil.
func NewService(db *sql.DB, tables *repository.FoodTableRepo, places *repository.FoodPlaceRepo, reservations *repository.ReservationRepo) *Service {
    if db == nil || tables == nil || places == nil || reservations == nil {
        panic("nil dependency passed to booking.NewService")
    }
    return &Service{DB: db, Tables: tables, Places: places, Reservations: reservations}
}

// Patch lists the reservation fields a user may change.  Nil fields
// keep their current value.  A patched reservation re-enters the full
// validation pipeline; there is no way to move a booking onto an
// occupied slot or outside opening hours.
type Patch struct {
    FoodTableID     *uint64
    StartTime       *time.Time
    DurationMinutes *int
}

// CreateReservation validates a booking request and persists it.  On
// success the stored reservation is returned with its generated ID.
// Validation failures come back as the package sentinel errors; all of
// them are deterministic for a given database state, so the only retry
// performed is one transparent re-run after a concurrent-write abort,
// after which the slot is reported occupied.
func (s *Service) CreateReservation(ctx context.Context, userID, tableID uint64, start time.Time, durationMinutes int) (*model.Reservation, error) {
    if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
        return nil, ErrInvalidDuration
    }
    res, err := s.createOnce(ctx, userID, tableID, start, durationMinutes)
    if retryable(err) {
        res, err = s.createOnce(ctx, userID, tableID, start, durationMinutes)
        if retryable(err) {
            return nil, ErrTimeSlotOccupied
        }
    }
    return res, err
}

func (s *Service) createOnce(ctx context.Context, userID, tableID uint64, start time.Time, durationMinutes int) (*model.Reservation, error) {
    tx, err := s.DB.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    res := &model.Reservation{
        UserID:          userID,
        FoodTableID:     tableID,
        StartTime:       start,
        DurationMinutes: durationMinutes,
    }
    if err := s.validateTx(ctx, tx, res, 0); err != nil {
        return nil, err
    }
    if err := s.Reservations.CreateTx(ctx, tx, res); err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    committed = true
    return res, nil
}

// Reschedule applies a Patch to an existing active reservation owned by
// the user, after re-running the full validation pipeline with the
// reservation excluded from its own conflict scan.  ErrReservationNotFound
// is returned when no active reservation matches the ID and owner.
func (s *Service) Reschedule(ctx context.Context, reservationID, userID uint64, p Patch) (*model.Reservation, error) {
    if p.DurationMinutes != nil && (*p.DurationMinutes < MinDurationMinutes || *p.DurationMinutes > MaxDurationMinutes) {
        return nil, ErrInvalidDuration
    }
    res, err := s.rescheduleOnce(ctx, reservationID, userID, p)
    if retryable(err) {
        res, err = s.rescheduleOnce(ctx, reservationID, userID, p)
        if retryable(err) {
            return nil, ErrTimeSlotOccupied
        }
    }
    return res, err
}

func (s *Service) rescheduleOnce(ctx context.Context, reservationID, userID uint64, p Patch) (*model.Reservation, error) {
    tx, err := s.DB.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    res, err := s.Reservations.GetActiveByIDForUserTx(ctx, tx, reservationID, userID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrReservationNotFound
        }
        return nil, err
    }
    if p.FoodTableID != nil {
        res.FoodTableID = *p.FoodTableID
    }
    if p.StartTime != nil {
        res.StartTime = *p.StartTime
    }
    if p.DurationMinutes != nil {
        res.DurationMinutes = *p.DurationMinutes
    }
    if err := s.validateTx(ctx, tx, res, res.ID); err != nil {
        return nil, err
    }
    if err := s.Reservations.UpdateTimingTx(ctx, tx, res); err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    committed = true
    return res, nil
}

// validateTx runs steps 2-6 of the pipeline inside the caller's
// transaction: table lookup, hours lookup, conflict scan over the
// bounded window, then the operating-window check.  excludeID names the
// reservation being re-validated, or 0 when creating.
func (s *Service) validateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation, excludeID uint64) error {
    if _, err := s.Tables.GetByIDTx(ctx, tx, res.FoodTableID); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrTableNotFound
        }
        return err
    }
    open, close, err := s.Places.HoursByTableTx(ctx, tx, res.FoodTableID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrTableNotFound
        }
        return err
    }
    start, end := res.StartTime, res.EndTime()
    // The scan window is padded by the duration ceiling on both sides so
    // it contains every reservation whose interval could reach [start, end).
    pad := MaxDurationMinutes * time.Minute
    existing, err := s.Reservations.ActiveInRangeForUpdateTx(ctx, tx, res.FoodTableID, start.Add(-pad), end.Add(pad))
    if err != nil {
        return err
    }
    if HasConflict(start, end, excludeID, existing) {
        return ErrTimeSlotOccupied
    }
    openAt, closeAt := ResolveWindow(open, close, start)
    if start.Before(openAt) || end.After(closeAt) {
        return ErrOutsideOperatingHours
    }
    return nil
}

// retryable reports whether err is a concurrent-write abort worth one
// transparent retry: a MySQL deadlock (1213) or lock wait timeout
// (1205) raised when two bookings fight over the same table rows.
func retryable(err error) bool {
    if err == nil {
        return false
    }
    msg := err.Error()
    return strings.Contains(msg, "1213") || strings.Contains(msg, "1205")
}
