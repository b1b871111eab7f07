package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/iliyamo/food-table-reservation/internal/handler"    // import the handlers that implement business logic
    "github.com/iliyamo/food-table-reservation/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Map the GET request at path "/healthz" to the Health handler.  This
    // endpoint can be used by load balancers or monitoring systems to verify
    // that the service is up and running.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    // Group for operations that do not require an existing session
    // (register, login, refresh).  Each of these handlers is responsible
    // for generating or exchanging tokens.
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Refresh rotates the refresh token; refresh-access only issues a new
    // access token and leaves the refresh token in place.
    g.POST("/refresh", a.Refresh)
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout does not require JWT authentication.  The handler accepts a
    // JSON body containing a `refresh_token` (or a bearer token) and
    // invalidates the session.
    g.POST("/logout", a.Logout)

    // Routes that require a valid access token.  Both roles may call /me.
    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole("ADMIN", "CUSTOMER"))
    auth.GET("/me", a.Me)

    // Also map POST /v1/logout to the same handler so clients can call
    // either path with a valid refresh token in the body.
    e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated browse endpoints.  Guests can
// explore locations, food places, their tables and menus without an
// account; only booking and ordering require authentication.
func RegisterPublic(e *echo.Echo, cat *handler.CatalogHandler) {
    // Locations group food places by city or district.
    e.GET("/v1/locations", cat.ListLocations)
    e.GET("/v1/locations/:id", cat.GetLocation)
    // Food places carry the operating window used to validate bookings.
    e.GET("/v1/food-places", cat.ListFoodPlaces)
    e.GET("/v1/food-places/:id", cat.GetFoodPlace)
    // Tables of a food place, and single-table lookup.
    e.GET("/v1/food-places/:id/tables", cat.ListFoodTables)
    e.GET("/v1/tables/:id", cat.GetFoodTable)
    // The menu of a food place.
    e.GET("/v1/food-places/:id/menu", cat.ListMenu)
    e.GET("/v1/menu-items/:id", cat.GetMenuItem)
}
