package router

import (
    "github.com/iliyamo/food-table-reservation/internal/handler"
    "github.com/iliyamo/food-table-reservation/internal/middleware"
    "github.com/labstack/echo/v4"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1.  All routes
// require a valid JWT and the ADMIN role.  Admins maintain the catalog
// (locations, food places, tables, menus) and can inspect every
// reservation in the system.
func RegisterAdmin(e *echo.Echo, cat *handler.CatalogHandler, res *handler.ReservationHandler, jwtSecret string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("ADMIN"),
    )

    // ---- Locations ----
    g.POST("/locations", cat.CreateLocation)
    g.PUT("/locations/:id", cat.UpdateLocation)
    g.DELETE("/locations/:id", cat.DeleteLocation)

    // ---- Food places ----
    g.POST("/food-places", cat.CreateFoodPlace)
    g.PUT("/food-places/:id", cat.UpdateFoodPlace)
    g.DELETE("/food-places/:id", cat.DeleteFoodPlace)

    // ---- Tables ----
    g.POST("/food-places/:id/tables", cat.CreateFoodTable)
    g.PUT("/tables/:id", cat.UpdateFoodTable)
    g.DELETE("/tables/:id", cat.DeleteFoodTable)

    // ---- Menu ----
    g.POST("/food-places/:id/menu", cat.CreateMenuItem)
    g.DELETE("/menu-items/:id", cat.DeleteMenuItem)

    // ---- Reservations ----
    g.GET("/reservations", res.ListAll)
}
