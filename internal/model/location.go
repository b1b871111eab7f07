package model

// Location represents a city or district that groups food places.
// Names are unique across the whole table.  This struct corresponds
// to a row in the `locations` table.
//
// Fields:
//  ID   – primary key identifier.
//  Name – unique location name.
type Location struct {
    ID   uint64 `json:"id"`   // locations.id
    Name string `json:"name"` // locations.name
}
