package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

// ErrFoodTableNotFound indicates that a food table was not located in the DB.
var ErrFoodTableNotFound = errors.New("food table not found")

// FoodTableRepo manages persistence for physical tables.  Table numbers
// are unique per food place; violations surface as ErrConflict.
type FoodTableRepo struct {
    db *sql.DB
}

// NewFoodTableRepo constructs a FoodTableRepo with the given DB handle.
func NewFoodTableRepo(db *sql.DB) *FoodTableRepo { return &FoodTableRepo{db: db} }

const foodTableColumns = `id, table_number, max_seats, food_place_id`

// Create inserts a new table and assigns the generated ID back to the
// struct.  ErrConflict is returned when the table number is already
// taken inside the food place.
func (r *FoodTableRepo) Create(ctx context.Context, t *model.FoodTable) error {
    const q = `INSERT INTO food_tables (table_number, max_seats, food_place_id) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, t.TableNumber, t.MaxSeats, t.FoodPlaceID)
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
    t.ID = uint64(id)
    return nil
}

// GetByID retrieves a table by its ID.  It returns ErrFoodTableNotFound
// when no matching row exists.
func (r *FoodTableRepo) GetByID(ctx context.Context, id uint64) (*model.FoodTable, error) {
    const q = `SELECT ` + foodTableColumns + ` FROM food_tables WHERE id = ?`
    var t model.FoodTable
    err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.TableNumber, &t.MaxSeats, &t.FoodPlaceID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrFoodTableNotFound
        }
        return nil, err
    }
    return &t, nil
}

// GetByIDTx is like GetByID but runs inside the caller's transaction.
// The booking engine uses it so the table lookup shares the snapshot of
// the conflict scan.  sql.ErrNoRows is passed through untranslated.
func (r *FoodTableRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.FoodTable, error) {
    const q = `SELECT ` + foodTableColumns + ` FROM food_tables WHERE id = ?`
    var t model.FoodTable
    err := tx.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.TableNumber, &t.MaxSeats, &t.FoodPlaceID)
    if err != nil {
        return nil, err
    }
    return &t, nil
}

// ListByPlace returns all tables of a food place ordered by table number.
func (r *FoodTableRepo) ListByPlace(ctx context.Context, placeID uint64) ([]model.FoodTable, error) {
    const q = `SELECT ` + foodTableColumns + ` FROM food_tables WHERE food_place_id = ? ORDER BY table_number`
    rows, err := r.db.QueryContext(ctx, q, placeID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.FoodTable, 0)
    for rows.Next() {
        var t model.FoodTable
        if err := rows.Scan(&t.ID, &t.TableNumber, &t.MaxSeats, &t.FoodPlaceID); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    return out, rows.Err()
}

// Update rewrites a table's number and capacity.  ErrFoodTableNotFound
// is returned when the row does not exist and ErrConflict when the new
// number collides inside the place.
func (r *FoodTableRepo) Update(ctx context.Context, t *model.FoodTable) error {
    const q = `UPDATE food_tables SET table_number = ?, max_seats = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, t.TableNumber, t.MaxSeats, t.ID)
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
        return ErrFoodTableNotFound
    }
    return nil
}

// Delete removes a table; its reservations cascade at the schema level.
// ErrFoodTableNotFound is returned when nothing was deleted.
func (r *FoodTableRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM food_tables WHERE id = ?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrFoodTableNotFound
    }
    return nil
}
