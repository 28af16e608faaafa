package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parkpass/ticketing-api/internal/repository"
)

// TicketHandler serves the ticket inventory endpoints.
type TicketHandler struct {
	Tickets TicketStore
}

func NewTicketHandler(t TicketStore) *TicketHandler { return &TicketHandler{Tickets: t} }

type createTicketReq struct {
	FacilityID  uint64  `json:"facility_id"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   int64   `json:"available"`
}

// List handles GET /api/tickets. Public; every ticket is enriched with
// its facility's name, newest-first.
func (h *TicketHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Tickets.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "list tickets failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/tickets (admin only). A facility_id that does
// not resolve responds 404; negative price or counts respond 400.
func (h *TicketHandler) Create(c echo.Context) error {
	var req createTicketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	req.Type = strings.TrimSpace(req.Type)
	switch {
	case req.FacilityID == 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "facility_id is required"})
	case req.Type == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "type is required"})
	case req.Price < 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "price must not be negative"})
	case req.Available < 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "available must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Tickets.Create(ctx, req.FacilityID, req.Type, req.Price,
		strings.TrimSpace(req.Description), req.Available)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "facility not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create ticket failed"})
	}
	return c.JSON(http.StatusCreated, t)
}

// Update handles PUT and PATCH /api/tickets/:id (admin only). Only fields
// present in the body change; absent fields and explicit nulls are left
// untouched.
func (h *TicketHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var patch repository.TicketPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if patch.Price != nil && *patch.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "price must not be negative"})
	}
	if patch.Available != nil && *patch.Available < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "available must not be negative"})
	}
	if patch.Sold != nil && *patch.Sold < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "sold must not be negative"})
	}
	if patch.Type != nil && strings.TrimSpace(*patch.Type) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "type must not be blank"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Tickets.Update(ctx, id, patch)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update ticket failed"})
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/tickets/:id (admin only).
func (h *TicketHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Tickets.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "delete ticket failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ticket deleted"})
}
