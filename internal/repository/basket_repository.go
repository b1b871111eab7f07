package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

// ErrBasketNotFound indicates that a food basket was not located in the DB.
var ErrBasketNotFound = errors.New("food basket not found")

// BasketRepo manages food baskets and their items.  A user keeps at
// most one open basket per food place; once the basket is marked
// ordered it becomes read-only history.  Items always travel with
// their basket and cascade on delete.
type BasketRepo struct {
    db *sql.DB
}

// NewBasketRepo constructs a BasketRepo with the given DB handle.
func NewBasketRepo(db *sql.DB) *BasketRepo { return &BasketRepo{db: db} }

// Create inserts a new open basket for the user and place and assigns
// the generated ID back to the struct.
func (r *BasketRepo) Create(ctx context.Context, b *model.FoodBasket) error {
    const q = `INSERT INTO food_baskets (user_id, food_place_id) VALUES (?, ?)`
    res, err := r.db.ExecContext(ctx, q, b.UserID, b.FoodPlaceID)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    return nil
}

// OpenByUserAndPlace returns the user's open basket for the food place.
// ErrBasketNotFound is returned when the user has no open basket there.
func (r *BasketRepo) OpenByUserAndPlace(ctx context.Context, userID, placeID uint64) (*model.FoodBasket, error) {
    const q = `SELECT id, ordered_at, is_ordered, user_id, food_place_id
               FROM food_baskets
               WHERE user_id = ? AND food_place_id = ? AND is_ordered = 0
               LIMIT 1`
    return r.scanOne(r.db.QueryRowContext(ctx, q, userID, placeID))
}

// GetByIDForUser returns a basket owned by the given user.
// ErrBasketNotFound is returned when the row is absent or owned by
// someone else.
func (r *BasketRepo) GetByIDForUser(ctx context.Context, id, userID uint64) (*model.FoodBasket, error) {
    const q = `SELECT id, ordered_at, is_ordered, user_id, food_place_id
               FROM food_baskets
               WHERE id = ? AND user_id = ?`
    return r.scanOne(r.db.QueryRowContext(ctx, q, id, userID))
}

// ListByUser returns all baskets of a user, open and ordered, newest first.
func (r *BasketRepo) ListByUser(ctx context.Context, userID uint64) ([]model.FoodBasket, error) {
    const q = `SELECT id, ordered_at, is_ordered, user_id, food_place_id
               FROM food_baskets
               WHERE user_id = ?
               ORDER BY id DESC`
    rows, err := r.db.QueryContext(ctx, q, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.FoodBasket, 0)
    for rows.Next() {
        var b model.FoodBasket
        var orderedAt sql.NullTime
        if err := rows.Scan(&b.ID, &orderedAt, &b.IsOrdered, &b.UserID, &b.FoodPlaceID); err != nil {
            return nil, err
        }
        if orderedAt.Valid {
            t := orderedAt.Time
            b.OrderedAt = &t
        }
        out = append(out, b)
    }
    return out, rows.Err()
}

// MarkOrdered stamps the basket as ordered at the given instant.  Only
// an open basket owned by the user can be ordered; otherwise
// ErrBasketNotFound is returned.
func (r *BasketRepo) MarkOrdered(ctx context.Context, id, userID uint64, at time.Time) error {
    const q = `UPDATE food_baskets SET is_ordered = 1, ordered_at = ? WHERE id = ? AND user_id = ? AND is_ordered = 0`
    res, err := r.db.ExecContext(ctx, q, at, id, userID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrBasketNotFound
    }
    return nil
}

// AddItem appends a menu item with a quantity to a basket and assigns
// the generated ID back to the struct.
func (r *BasketRepo) AddItem(ctx context.Context, item *model.BasketItem) error {
    const q = `INSERT INTO basket_items (item_quantity, menu_item_id, food_basket_id) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, item.ItemQuantity, item.MenuItemID, item.FoodBasketID)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    item.ID = uint64(id)
    return nil
}

// ItemsByBasket returns all items of a basket in insertion order.
func (r *BasketRepo) ItemsByBasket(ctx context.Context, basketID uint64) ([]model.BasketItem, error) {
    const q = `SELECT id, item_quantity, menu_item_id, food_basket_id FROM basket_items WHERE food_basket_id = ? ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q, basketID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.BasketItem, 0)
    for rows.Next() {
        var it model.BasketItem
        if err := rows.Scan(&it.ID, &it.ItemQuantity, &it.MenuItemID, &it.FoodBasketID); err != nil {
            return nil, err
        }
        out = append(out, it)
    }
    return out, rows.Err()
}

func (r *BasketRepo) scanOne(row *sql.Row) (*model.FoodBasket, error) {
    var b model.FoodBasket
    var orderedAt sql.NullTime
    err := row.Scan(&b.ID, &orderedAt, &b.IsOrdered, &b.UserID, &b.FoodPlaceID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrBasketNotFound
        }
        return nil, err
    }
    if orderedAt.Valid {
        t := orderedAt.Time
        b.OrderedAt = &t
    }
    return &b, nil
}
