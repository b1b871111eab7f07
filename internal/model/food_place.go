package model

// FoodPlace represents a restaurant or cafe inside a location.  A food
// place owns menu items and physical tables and advertises a daily
// operating window via OpenTime and CloseTime.  When CloseTime is
// earlier than OpenTime the window crosses midnight: a place opening at
// 18:00 and closing at 02:00 serves guests into the following calendar
// day.  Names are unique per location.  This struct corresponds to a
// row in the `food_places` table.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – food place name, unique per location.
//  Address     – street address.
//  Description – optional free-form description.
//  LocationID  – location the place belongs to.
//  OpenTime    – daily opening time of day.
//  CloseTime   – daily closing time of day (may be before OpenTime).
type FoodPlace struct {
    ID          uint64    `json:"id"`          // food_places.id
    Name        string    `json:"name"`        // food_places.name
    Address     string    `json:"address"`     // food_places.address
    Description *string   `json:"description"` // food_places.description (nullable)
    LocationID  uint64    `json:"location_id"` // food_places.location_id
    OpenTime    TimeOfDay `json:"open_time"`   // food_places.open_time
    CloseTime   TimeOfDay `json:"close_time"`  // food_places.close_time
}
