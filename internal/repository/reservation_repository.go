package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

// ReservationRepo provides persistence for table reservations.  Rows
// store only the start instant and the duration; the end instant is
// derived through model.Reservation.EndTime and never written.  The
// booking engine runs its conflict checks inside a transaction, so the
// methods it needs take an explicit *sql.Tx; read-only listing methods
// use the plain connection pool.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying sql.DB so callers can begin transactions
// spanning multiple repositories.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `id, user_id, food_table_id, start_time, duration_minutes, is_active, created_at`

// CreateTx inserts a new reservation within the scope of an existing
// transaction and reads the row back to populate the generated ID and
// database defaults.  The caller must commit or roll back the
// transaction.  The reservation must already have passed validation.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
    const q = `INSERT INTO reservations (user_id, food_table_id, start_time, duration_minutes) VALUES (?, ?, ?, ?)`
    result, err := tx.ExecContext(ctx, q, res.UserID, res.FoodTableID, res.StartTime, res.DurationMinutes)
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    res.ID = uint64(id)
    const sel = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
    return tx.QueryRowContext(ctx, sel, res.ID).Scan(
        &res.ID, &res.UserID, &res.FoodTableID, &res.StartTime, &res.DurationMinutes, &res.IsActive, &res.CreatedAt,
    )
}

// ActiveInRangeForUpdateTx returns all active reservations on the table
// whose start falls inside [from, to], locking the rows with SELECT ...
// FOR UPDATE so concurrent booking attempts on the same table serialize
// against each other.  Callers derive the range from the candidate
// interval padded by the maximum duration on both sides, which provably
// contains every row able to overlap the candidate.
func (r *ReservationRepo) ActiveInRangeForUpdateTx(ctx context.Context, tx *sql.Tx, tableID uint64, from, to time.Time) ([]model.Reservation, error) {
    const q = `SELECT ` + reservationColumns + `
               FROM reservations
               WHERE food_table_id = ? AND is_active = 1 AND start_time BETWEEN ? AND ?
               FOR UPDATE`
    rows, err := tx.QueryContext(ctx, q, tableID, from, to)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Reservation
    for rows.Next() {
        var res model.Reservation
        if err := rows.Scan(
            &res.ID, &res.UserID, &res.FoodTableID, &res.StartTime, &res.DurationMinutes, &res.IsActive, &res.CreatedAt,
        ); err != nil {
            return nil, err
        }
        out = append(out, res)
    }
    return out, rows.Err()
}

// GetActiveByIDForUserTx loads an active reservation by ID inside a
// transaction, enforcing ownership.  sql.ErrNoRows is returned both
// when the row does not exist and when it belongs to another user, so
// callers cannot probe foreign reservations.
func (r *ReservationRepo) GetActiveByIDForUserTx(ctx context.Context, tx *sql.Tx, id, userID uint64) (*model.Reservation, error) {
    const q = `SELECT ` + reservationColumns + `
               FROM reservations
               WHERE id = ? AND user_id = ? AND is_active = 1
               FOR UPDATE`
    var res model.Reservation
    err := tx.QueryRowContext(ctx, q, id, userID).Scan(
        &res.ID, &res.UserID, &res.FoodTableID, &res.StartTime, &res.DurationMinutes, &res.IsActive, &res.CreatedAt,
    )
    if err != nil {
        return nil, err
    }
    return &res, nil
}

// UpdateTimingTx persists a re-validated patch of the mutable fields
// (table, start, duration).  The booking engine must have re-run the
// full validation pipeline before this is called; no mutation path
// bypasses it.
func (r *ReservationRepo) UpdateTimingTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
    const q = `UPDATE reservations SET food_table_id = ?, start_time = ?, duration_minutes = ? WHERE id = ?`
    _, err := tx.ExecContext(ctx, q, res.FoodTableID, res.StartTime, res.DurationMinutes, res.ID)
    return err
}

// GetByIDForUser returns a single reservation owned by the given user.
// Cancelled reservations remain visible to their owner.  sql.ErrNoRows
// is returned when the row is absent or owned by someone else.
func (r *ReservationRepo) GetByIDForUser(ctx context.Context, id, userID uint64) (*model.Reservation, error) {
    const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ? AND user_id = ?`
    var res model.Reservation
    err := r.db.QueryRowContext(ctx, q, id, userID).Scan(
        &res.ID, &res.UserID, &res.FoodTableID, &res.StartTime, &res.DurationMinutes, &res.IsActive, &res.CreatedAt,
    )
    if err != nil {
        return nil, err
    }
    return &res, nil
}

// ListByUser returns all reservations belonging to the user, newest
// first.  An empty slice is returned when none exist.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Reservation, error) {
    const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = ? ORDER BY start_time DESC`
    return r.queryMany(ctx, q, userID)
}

// ListAll returns every reservation in the system, newest first.  It
// backs the admin listing endpoint.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
    const q = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY start_time DESC`
    return r.queryMany(ctx, q)
}

// DeactivateByIDForUser soft-deletes a reservation owned by the user.
// The row stays in place with is_active = 0 so history survives while
// conflict checks ignore it.  sql.ErrNoRows is returned when no active
// reservation matches the ID and owner.
func (r *ReservationRepo) DeactivateByIDForUser(ctx context.Context, id, userID uint64) error {
    const q = `UPDATE reservations SET is_active = 0 WHERE id = ? AND user_id = ? AND is_active = 1`
    result, err := r.db.ExecContext(ctx, q, id, userID)
    if err != nil {
        return err
    }
    n, err := result.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return sql.ErrNoRows
    }
    return nil
}

func (r *ReservationRepo) queryMany(ctx context.Context, q string, args ...interface{}) ([]model.Reservation, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Reservation, 0)
    for rows.Next() {
        var res model.Reservation
        if err := rows.Scan(
            &res.ID, &res.UserID, &res.FoodTableID, &res.StartTime, &res.DurationMinutes, &res.IsActive, &res.CreatedAt,
        ); err != nil {
            return nil, err
        }
        out = append(out, res)
    }
    return out, rows.Err()
}
