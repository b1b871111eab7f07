package model

// FoodTable is a physical table inside a food place that customers can
// reserve.  Table numbers are unique per food place.  MaxSeats is
// stored for future capacity checks but is not enforced when booking.
//
// Fields:
//  ID          – primary key identifier.
//  TableNumber – human-readable table label, unique per place.
//  MaxSeats    – seating capacity of the table.
//  FoodPlaceID – food place that owns the table.
type FoodTable struct {
    ID          uint64 `json:"id"`            // food_tables.id
    TableNumber string `json:"table_number"`  // food_tables.table_number
    MaxSeats    uint32 `json:"max_seats"`     // food_tables.max_seats
    FoodPlaceID uint64 `json:"food_place_id"` // food_tables.food_place_id
}
