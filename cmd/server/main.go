package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"                // .env loader for local development
	"github.com/labstack/echo/v4"             // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo built-in middleware

	"github.com/iliyamo/hotel-reservation/internal/config"     // Internal config loader
	"github.com/iliyamo/hotel-reservation/internal/database"   // MySQL pool
	"github.com/iliyamo/hotel-reservation/internal/handler"    // HTTP handlers
	"github.com/iliyamo/hotel-reservation/internal/repository" // DB repositories
	"github.com/iliyamo/hotel-reservation/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the admin response cache; nil means caching is disabled.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache disabled")
	}

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover()) // panics become generic 500s, never stack traces
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true, // cookies cross origins
	}))

	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users))
	router.RegisterBookings(e, handler.NewBookingHandler(cfg, bookings), cfg, config.LoadCacheConfig(), rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
