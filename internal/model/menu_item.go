package model

// MenuItem is a dish offered by a food place.  Item names are unique
// per food place.  Prices are stored in cents to avoid floating point
// rounding in totals.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – dish name, unique per food place.
//  PriceCents  – price in cents.
//  Description – optional description of the dish.
//  FoodPlaceID – food place offering the dish.
type MenuItem struct {
    ID          uint64  `json:"id"`            // menu_items.id
    Name        string  `json:"name"`          // menu_items.name
    PriceCents  uint32  `json:"price_cents"`   // menu_items.price_cents
    Description *string `json:"description"`   // menu_items.description (nullable)
    FoodPlaceID uint64  `json:"food_place_id"` // menu_items.food_place_id
}
