package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

// ErrLocationNotFound indicates that a location was not located in the DB.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepo manages persistence for locations.  Location names are
// globally unique; violations surface as ErrConflict.
type LocationRepo struct {
    db *sql.DB
}

// NewLocationRepo constructs a LocationRepo with the given DB handle.
func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{db: db} }

// Create inserts a new location and assigns the generated ID back to
// the struct.  ErrConflict is returned on a duplicate name.
func (r *LocationRepo) Create(ctx context.Context, l *model.Location) error {
    res, err := r.db.ExecContext(ctx, `INSERT INTO locations (name) VALUES (?)`, l.Name)
    if err != nil {
        if isDuplicate(err) {
            return ErrConflict
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    l.ID = uint64(id)
    return nil
}

// GetByID retrieves a location by its ID.  It returns
// ErrLocationNotFound when no matching row exists.
func (r *LocationRepo) GetByID(ctx context.Context, id uint64) (*model.Location, error) {
    var l model.Location
    err := r.db.QueryRowContext(ctx, `SELECT id, name FROM locations WHERE id = ?`, id).Scan(&l.ID, &l.Name)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrLocationNotFound
        }
        return nil, err
    }
    return &l, nil
}

// List returns all locations ordered by name.
func (r *LocationRepo) List(ctx context.Context) ([]model.Location, error) {
    rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM locations ORDER BY name`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Location, 0)
    for rows.Next() {
        var l model.Location
        if err := rows.Scan(&l.ID, &l.Name); err != nil {
            return nil, err
        }
        out = append(out, l)
    }
    return out, rows.Err()
}

// Update renames a location.  ErrLocationNotFound is returned when the
// row does not exist and ErrConflict when the new name is taken.
func (r *LocationRepo) Update(ctx context.Context, l *model.Location) error {
    res, err := r.db.ExecContext(ctx, `UPDATE locations SET name = ? WHERE id = ?`, l.Name, l.ID)
    if err != nil {
        if isDuplicate(err) {
            return ErrConflict
        }
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrLocationNotFound
    }
    return nil
}

// Delete removes a location; its food places cascade at the schema
// level.  ErrLocationNotFound is returned when nothing was deleted.
func (r *LocationRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrLocationNotFound
    }
    return nil
}
