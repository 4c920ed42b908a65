package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"           // godotenv loads .env files into the environment
	"github.com/labstack/echo/v4"        // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in logger and recover middleware

	"github.com/avolkov/tour-catalog/internal/config"     // Internal config loader
	"github.com/avolkov/tour-catalog/internal/database"   // SQLite connection and schema bootstrap
	"github.com/avolkov/tour-catalog/internal/handler"    // HTTP handlers
	"github.com/avolkov/tour-catalog/internal/middleware" // Response cache middleware
	"github.com/avolkov/tour-catalog/internal/model"      // Domain types and validator
	"github.com/avolkov/tour-catalog/internal/queue"      // Catalog event publisher
	"github.com/avolkov/tour-catalog/internal/repository" // Tour store
	"github.com/avolkov/tour-catalog/internal/router"     // Route registration
	"github.com/avolkov/tour-catalog/internal/view"       // Storefront template renderer
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Validator = model.NewValidator()
	e.Renderer = renderer

	// Redis is optional: when it is unreachable the cache middleware becomes
	// a pass-through and every read hits the store.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response caching disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	invalidate := middleware.NewCacheInvalidator(cacheCfg, rdb)

	store := repository.NewTourRepo(db)
	tours := handler.NewTourHandler(store, queue.PublishTourEvent, handler.CacheInvalidator(invalidate), cfg.DefaultLimit)
	pages := handler.NewPageHandler(store)
	router.RegisterRoutes(e, tours, pages, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
