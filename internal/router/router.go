// Package router wires HTTP routes to handlers and applies middleware.
package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/parkpass/ticketing-api/internal/handler"
	"github.com/parkpass/ticketing-api/internal/middleware"
	"github.com/parkpass/ticketing-api/internal/model"
)

// Handlers collects every handler the API needs.
type Handlers struct {
	Auth       *handler.AuthHandler
	Facilities *handler.FacilityHandler
	Tickets    *handler.TicketHandler
	Purchases  *handler.PurchaseHandler
}

// Register sets up the full route table. Catalog reads and auth are
// public; purchases require a token; catalog mutation and the account
// listing require the admin role. rdb may be nil, which disables rate
// limiting.
func Register(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.Use(middleware.RateLimit(rdb, 60, time.Minute))

	// Public
	api.POST("/signup", h.Auth.Signup)
	api.POST("/login", h.Auth.Login)
	api.GET("/facilities", h.Facilities.List)
	api.GET("/tickets", h.Tickets.List)

	// Any authenticated account
	authed := api.Group("")
	authed.Use(middleware.JWTAuth(jwtSecret))
	authed.POST("/purchases", h.Purchases.Create)
	authed.GET("/purchases/:userId", h.Purchases.ListByUser)

	// Admin only
	admin := api.Group("")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/facilities", h.Facilities.Create)
	admin.DELETE("/facilities/:id", h.Facilities.Delete)
	admin.POST("/tickets", h.Tickets.Create)
	admin.PUT("/tickets/:id", h.Tickets.Update)
	admin.PATCH("/tickets/:id", h.Tickets.Update)
	admin.DELETE("/tickets/:id", h.Tickets.Delete)
	admin.GET("/users", h.Auth.ListUsers)
}
