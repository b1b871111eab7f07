package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

// ErrFoodPlaceNotFound indicates that a food place was not located in the DB.
var ErrFoodPlaceNotFound = errors.New("food place not found")

// FoodPlaceRepo manages persistence for food places, including the
// open/close times the booking engine resolves against.  Name is unique
// per location; violations surface as ErrConflict.
type FoodPlaceRepo struct {
    db *sql.DB
}

// NewFoodPlaceRepo constructs a FoodPlaceRepo with the given DB handle.
func NewFoodPlaceRepo(db *sql.DB) *FoodPlaceRepo { return &FoodPlaceRepo{db: db} }

const foodPlaceColumns = `id, name, address, description, location_id, open_time, close_time`

// Create inserts a new food place and assigns the generated ID back to
// the struct.  ErrConflict is returned when a place with the same name
// already exists in the location.
func (r *FoodPlaceRepo) Create(ctx context.Context, p *model.FoodPlace) error {
    const q = `INSERT INTO food_places (name, address, description, location_id, open_time, close_time) VALUES (?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, p.Name, p.Address, p.Description, p.LocationID, p.OpenTime, p.CloseTime)
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
    p.ID = uint64(id)
    return nil
}

// GetByID retrieves a food place by its ID.  It returns
// ErrFoodPlaceNotFound when no matching row exists.
func (r *FoodPlaceRepo) GetByID(ctx context.Context, id uint64) (*model.FoodPlace, error) {
    const q = `SELECT ` + foodPlaceColumns + ` FROM food_places WHERE id = ?`
    var p model.FoodPlace
    var desc sql.NullString
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &p.ID, &p.Name, &p.Address, &desc, &p.LocationID, &p.OpenTime, &p.CloseTime,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrFoodPlaceNotFound
        }
        return nil, err
    }
    if desc.Valid {
        d := desc.String
        p.Description = &d
    }
    return &p, nil
}

// List returns all food places ordered by name.
func (r *FoodPlaceRepo) List(ctx context.Context) ([]model.FoodPlace, error) {
    const q = `SELECT ` + foodPlaceColumns + ` FROM food_places ORDER BY name`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.FoodPlace, 0)
    for rows.Next() {
        var p model.FoodPlace
        var desc sql.NullString
        if err := rows.Scan(&p.ID, &p.Name, &p.Address, &desc, &p.LocationID, &p.OpenTime, &p.CloseTime); err != nil {
            return nil, err
        }
        if desc.Valid {
            d := desc.String
            p.Description = &d
        }
        out = append(out, p)
    }
    return out, rows.Err()
}

// Update rewrites the mutable attributes of a food place.
// ErrFoodPlaceNotFound is returned when the row does not exist and
// ErrConflict when the new name collides inside the location.
func (r *FoodPlaceRepo) Update(ctx context.Context, p *model.FoodPlace) error {
    const q = `UPDATE food_places SET name = ?, address = ?, description = ?, open_time = ?, close_time = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, p.Name, p.Address, p.Description, p.OpenTime, p.CloseTime, p.ID)
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
        return ErrFoodPlaceNotFound
    }
    return nil
}

// Delete removes a food place; tables, menu items and baskets cascade
// at the schema level.  ErrFoodPlaceNotFound is returned when nothing
// was deleted.
func (r *FoodPlaceRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM food_places WHERE id = ?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrFoodPlaceNotFound
    }
    return nil
}

// HoursByTableTx resolves the open/close pair of the food place owning
// the given table, inside the caller's transaction.  The booking engine
// uses it so that the hours it validates against belong to the same
// snapshot as the reservations it locks.  sql.ErrNoRows is returned
// when the table does not exist.
func (r *FoodPlaceRepo) HoursByTableTx(ctx context.Context, tx *sql.Tx, tableID uint64) (model.TimeOfDay, model.TimeOfDay, error) {
    const q = `SELECT p.open_time, p.close_time
               FROM food_places p
               JOIN food_tables t ON t.food_place_id = p.id
               WHERE t.id = ?`
    var open, close model.TimeOfDay
    err := tx.QueryRowContext(ctx, q, tableID).Scan(&open, &close)
    return open, close, err
}
