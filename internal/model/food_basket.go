package model

import "time"

// FoodBasket is a user's cart for one food place.  A user keeps at most
// one open (not yet ordered) basket per place; marking the basket
// ordered freezes it and stamps OrderedAt.  Basket items are removed
// together with their basket.
//
// Fields:
//  ID          – primary key identifier.
//  OrderedAt   – when the basket was turned into an order (nil while open).
//  IsOrdered   – whether the basket has been ordered.
//  UserID      – owner of the basket.
//  FoodPlaceID – food place the basket belongs to.
type FoodBasket struct {
    ID          uint64     `json:"id"`            // food_baskets.id
    OrderedAt   *time.Time `json:"ordered_at"`    // food_baskets.ordered_at (nullable)
    IsOrdered   bool       `json:"is_ordered"`    // food_baskets.is_ordered
    UserID      uint64     `json:"user_id"`       // food_baskets.user_id
    FoodPlaceID uint64     `json:"food_place_id"` // food_baskets.food_place_id
}

// MarkOrdered flags the basket as ordered at the given instant.
func (b *FoodBasket) MarkOrdered(now time.Time) {
    t := now
    b.OrderedAt = &t
    b.IsOrdered = true
}

// BasketItem links a menu item and a quantity to a food basket.
//
// Fields:
//  ID           – primary key identifier.
//  ItemQuantity – how many units of the menu item are in the basket.
//  MenuItemID   – the menu item being ordered.
//  FoodBasketID – basket containing the item.
type BasketItem struct {
    ID           uint64 `json:"id"`             // basket_items.id
    ItemQuantity uint32 `json:"item_quantity"`  // basket_items.item_quantity
    MenuItemID   uint64 `json:"menu_item_id"`   // basket_items.menu_item_id
    FoodBasketID uint64 `json:"food_basket_id"` // basket_items.food_basket_id
}
