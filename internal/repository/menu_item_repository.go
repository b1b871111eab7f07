package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

// ErrMenuItemNotFound indicates that a menu item was not located in the DB.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepo manages persistence for menu items.  Item names are
// unique per food place; violations surface as ErrConflict.
type MenuItemRepo struct {
    db *sql.DB
}

// NewMenuItemRepo constructs a MenuItemRepo with the given DB handle.
func NewMenuItemRepo(db *sql.DB) *MenuItemRepo { return &MenuItemRepo{db: db} }

const menuItemColumns = `id, name, price_cents, description, food_place_id`

// Create inserts a new menu item and assigns the generated ID back to
// the struct.  ErrConflict is returned when the name is already taken
// inside the food place.
func (r *MenuItemRepo) Create(ctx context.Context, m *model.MenuItem) error {
    const q = `INSERT INTO menu_items (name, price_cents, description, food_place_id) VALUES (?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, m.Name, m.PriceCents, m.Description, m.FoodPlaceID)
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
    m.ID = uint64(id)
    return nil
}

// GetByID retrieves a menu item by its ID.  It returns
// ErrMenuItemNotFound when no matching row exists.
func (r *MenuItemRepo) GetByID(ctx context.Context, id uint64) (*model.MenuItem, error) {
    const q = `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = ?`
    var m model.MenuItem
    var desc sql.NullString
    err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Name, &m.PriceCents, &desc, &m.FoodPlaceID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrMenuItemNotFound
        }
        return nil, err
    }
    if desc.Valid {
        d := desc.String
        m.Description = &d
    }
    return &m, nil
}

// ListByPlace returns the menu of a food place ordered by item name.
func (r *MenuItemRepo) ListByPlace(ctx context.Context, placeID uint64) ([]model.MenuItem, error) {
    const q = `SELECT ` + menuItemColumns + ` FROM menu_items WHERE food_place_id = ? ORDER BY name`
    rows, err := r.db.QueryContext(ctx, q, placeID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.MenuItem, 0)
    for rows.Next() {
        var m model.MenuItem
        var desc sql.NullString
        if err := rows.Scan(&m.ID, &m.Name, &m.PriceCents, &desc, &m.FoodPlaceID); err != nil {
            return nil, err
        }
        if desc.Valid {
            d := desc.String
            m.Description = &d
        }
        out = append(out, m)
    }
    return out, rows.Err()
}

// Delete removes a menu item.  ErrMenuItemNotFound is returned when
// nothing was deleted.
func (r *MenuItemRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrMenuItemNotFound
    }
    return nil
}
