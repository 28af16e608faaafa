package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parkpass/ticketing-api/internal/middleware"
	"github.com/parkpass/ticketing-api/internal/model"
	"github.com/parkpass/ticketing-api/internal/queue"
	"github.com/parkpass/ticketing-api/internal/repository"
)

// PurchaseHandler serves purchase recording and history. Publish is
// invoked after a committed purchase; a nil Publish disables events
// (useful in tests and when no broker is configured).
type PurchaseHandler struct {
	Purchases PurchaseStore
	Publish   func(ctx context.Context, ev queue.PurchaseRecordedEvent) error
}

func NewPurchaseHandler(p PurchaseStore, publish func(context.Context, queue.PurchaseRecordedEvent) error) *PurchaseHandler {
	return &PurchaseHandler{Purchases: p, Publish: publish}
}

type createPurchaseReq struct {
	TicketID uint64 `json:"ticket_id"`
	Quantity int64  `json:"quantity"`
}

// Create handles POST /api/purchases. The buying account comes from the
// access token, never the body. Price, ticket type and facility name are
// snapshotted from the ticket inside the store transaction, so the total
// always equals price x quantity and stale client data cannot corrupt
// the record. Asking for more than `available` responds 409.
func (h *PurchaseHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req createPurchaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.TicketID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ticket_id is required"})
	}
	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "quantity must be positive"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Purchases.Create(ctx, userID, req.TicketID, req.Quantity)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "ticket not found"})
		case repository.ErrInsufficientStock:
			return c.JSON(http.StatusConflict, echo.Map{"message": "not enough tickets available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "purchase failed"})
		}
	}

	if h.Publish != nil {
		ev := queue.PurchaseRecordedEvent{
			PurchaseID:   p.ID,
			UserID:       p.UserID,
			TicketID:     p.TicketID,
			FacilityName: p.FacilityName,
			TicketType:   p.Type,
			Quantity:     p.Quantity,
			Total:        p.Total,
			RecordedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		}
		// Best effort: the sale is committed, a broker outage only costs
		// the downstream log line.
		if err := h.Publish(ctx, ev); err != nil {
			log.Printf("purchase %d: publish event failed: %v", p.ID, err)
		}
	}
	return c.JSON(http.StatusCreated, p)
}

// ListByUser handles GET /api/purchases/:userId. Callers may read their
// own history; admins may read anyone's.
func (h *PurchaseHandler) ListByUser(c echo.Context) error {
	callerID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	role, _ := c.Get("role").(string)
	if callerID != targetID && role != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Purchases.ListByUser(ctx, targetID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "list purchases failed"})
	}
	return c.JSON(http.StatusOK, items)
}
