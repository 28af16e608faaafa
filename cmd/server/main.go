package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/parkpass/ticketing-api/internal/config"
	"github.com/parkpass/ticketing-api/internal/database"
	"github.com/parkpass/ticketing-api/internal/handler"
	"github.com/parkpass/ticketing-api/internal/queue"
	"github.com/parkpass/ticketing-api/internal/repository"
	"github.com/parkpass/ticketing-api/internal/router"
	queue_publisher "github.com/parkpass/ticketing-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}
	users := repository.NewUserRepo(db)

	// Bootstrap steps are idempotent; a failure is logged and the server
	// keeps starting rather than crash-looping.
	if err := database.EnsureAdmin(ctx, users, cfg.AdminEmail, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Printf("ensure admin: %v", err)
	}
	if cfg.SeedSamples {
		if err := database.SeedSampleCatalog(ctx, db); err != nil {
			log.Printf("seed sample catalog: %v", err)
		}
	}

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users),
		Facilities: handler.NewFacilityHandler(repository.NewFacilityRepo(db)),
		Tickets:    handler.NewTicketHandler(repository.NewTicketRepo(db)),
		Purchases:  handler.NewPurchaseHandler(repository.NewPurchaseRepo(db), queue_publisher.PublishPurchaseRecorded),
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}

	go queue.StartPurchaseConsumer()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
