package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parkpass/ticketing-api/internal/model"
	"github.com/parkpass/ticketing-api/internal/repository"
)

// FacilityHandler serves the facility catalog endpoints.
type FacilityHandler struct {
	Facilities FacilityStore
}

func NewFacilityHandler(f FacilityStore) *FacilityHandler { return &FacilityHandler{Facilities: f} }

type createFacilityReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// Create handles POST /api/facilities (admin only). Category defaults to
// "ride" when omitted; name and description are required.
func (h *FacilityHandler) Create(c echo.Context) error {
	var req createFacilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "name and description are required"})
	}
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		category = model.CategoryRide
	}
	if !model.ValidCategory(category) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown category"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f, err := h.Facilities.Create(ctx, req.Name, req.Description, strings.TrimSpace(req.Image), category)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create facility failed"})
	}
	return c.JSON(http.StatusCreated, f)
}

// List handles GET /api/facilities. Public, newest-first.
func (h *FacilityHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Facilities.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "list facilities failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /api/facilities/:id (admin only). The store
// removes the facility and all of its tickets in one transaction.
func (h *FacilityHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Facilities.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "facility not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "delete facility failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "facility and its tickets deleted"})
}
