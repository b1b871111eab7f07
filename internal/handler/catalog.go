package handler

import (
    "github.com/iliyamo/food-table-reservation/internal/repository"
)

// CatalogHandler serves the restaurant catalog: locations, food places,
// tables and menu items.  Reads are public; writes are reserved for
// ADMIN users and guarded by middleware at the router level.
type CatalogHandler struct {
    Locations *repository.LocationRepo
    Places    *repository.FoodPlaceRepo
    Tables    *repository.FoodTableRepo
    Menu      *repository.MenuItemRepo
}

// NewCatalogHandler constructs a CatalogHandler.  All dependencies must
// be non-nil.
func NewCatalogHandler(locations *repository.LocationRepo, places *repository.FoodPlaceRepo, tables *repository.FoodTableRepo, menu *repository.MenuItemRepo) *CatalogHandler {
    if locations == nil || places == nil || tables == nil || menu == nil {
        panic("nil dependency passed to NewCatalogHandler")
    }
    return &CatalogHandler{Locations: locations, Places: places, Tables: tables, Menu: menu}
}
