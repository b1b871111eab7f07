package main // Entry point package

import (
    "log" // Logging library

    "github.com/joho/godotenv"    // .env loader for local development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/food-table-reservation/internal/booking"    // Booking engine
    "github.com/iliyamo/food-table-reservation/internal/config"     // Internal config loader
    "github.com/iliyamo/food-table-reservation/internal/database"   // MySQL connector
    "github.com/iliyamo/food-table-reservation/internal/handler"    // HTTP handlers
    "github.com/iliyamo/food-table-reservation/internal/middleware" // Rate limiting and caching
    "github.com/iliyamo/food-table-reservation/internal/queue"      // Background consumer
    "github.com/iliyamo/food-table-reservation/internal/repository" // Data access layer
    "github.com/iliyamo/food-table-reservation/internal/router"     // Internal router setup
)

func main() {
    // Load .env if present; real deployments rely on the environment.
    _ = godotenv.Load()

    cfg := config.Load() // Load environment config

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    // Redis is optional: when unavailable, rate limiting and response
    // caching degrade to no-ops.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable, rate limiting and caching disabled")
    }

    // Repositories
    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    locations := repository.NewLocationRepo(db)
    places := repository.NewFoodPlaceRepo(db)
    tables := repository.NewFoodTableRepo(db)
    menu := repository.NewMenuItemRepo(db)
    baskets := repository.NewBasketRepo(db)
    reservations := repository.NewReservationRepo(db)

    // Booking engine: all reservation validation and conflict detection
    // runs through this service inside a single transaction.
    engine := booking.NewService(db, tables, places, reservations)

    // Handlers
    auth := handler.NewAuthHandler(cfg, users, tokens)
    catalog := handler.NewCatalogHandler(locations, places, tables, menu)
    basketH := handler.NewBasketHandler(baskets, menu, places)
    reservationH := handler.NewReservationHandler(engine, reservations)

    e := echo.New()

    // Global middleware: distributed token-bucket rate limiting and a
    // Redis response cache for public reads.
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

    // Routes
    router.RegisterRoutes(e)                                      // health check
    router.RegisterAuth(e, auth, cfg.JWTSecret)                   // auth endpoints
    router.RegisterPublic(e, catalog)                             // guest browsing
    router.RegisterCustomer(e, reservationH, basketH, cfg.JWTSecret) // bookings and baskets
    router.RegisterAdmin(e, catalog, reservationH, cfg.JWTSecret) // catalog management

    // Consume confirmation events in the background; the consumer keeps
    // its own reconnect loop and never brings the server down.
    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("reservation consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port                                // Address string with port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

    if err := e.Start(addr); err != nil { // Start HTTP server
        log.Fatal(err) // Log and exit if server fails
    }
}
