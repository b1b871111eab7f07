package router

import (
    "github.com/iliyamo/food-table-reservation/internal/handler"
    "github.com/iliyamo/food-table-reservation/internal/middleware"
    "github.com/labstack/echo/v4"
)

// RegisterCustomer registers customer-scoped endpoints under /v1.  All
// routes require a valid JWT and the CUSTOMER role.  Customers can book
// tables, reschedule or cancel their own reservations, and manage food
// baskets.
func RegisterCustomer(e *echo.Echo, res *handler.ReservationHandler, baskets *handler.BasketHandler, jwtSecret string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("CUSTOMER"),
    )

    // ---- Reservations ----
    g.POST("/reservations", res.Create)
    g.POST("/reservations/date-time", res.CreateAtDateTime)
    g.GET("/my-reservations", res.List)
    g.GET("/reservations/:id", res.Get)
    g.PATCH("/reservations/:id", res.Patch)
    g.DELETE("/reservations/:id", res.Delete)

    // ---- Food baskets ----
    g.POST("/baskets", baskets.Create)
    g.GET("/baskets", baskets.List)
    g.GET("/baskets/:id", baskets.Get)
    g.POST("/baskets/:id/items", baskets.AddItem)
    g.POST("/baskets/:id/order", baskets.Order)
}
