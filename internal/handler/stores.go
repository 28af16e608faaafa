// Package handler implements the HTTP layer of the ticketing API. Handlers
// bind and validate request bodies, call the store, and map sentinel
// errors onto HTTP status codes. Failures are reported as a JSON object
// with a single "message" string.
package handler

import (
	"context"

	"github.com/parkpass/ticketing-api/internal/model"
	"github.com/parkpass/ticketing-api/internal/repository"
)

// The store interfaces are declared here, on the consumer side, so tests
// can substitute in-memory fakes. The repository types satisfy them.

type UserStore interface {
	Create(ctx context.Context, name, email, password, role string, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context) ([]model.UserSummary, error)
}

type FacilityStore interface {
	Create(ctx context.Context, name, description, imageURL, category string) (model.Facility, error)
	List(ctx context.Context) ([]model.Facility, error)
	Delete(ctx context.Context, id uint64) error
}

type TicketStore interface {
	Create(ctx context.Context, facilityID uint64, typ string, price float64, description string, available int64) (model.Ticket, error)
	List(ctx context.Context) ([]model.Ticket, error)
	Update(ctx context.Context, id uint64, patch repository.TicketPatch) (model.Ticket, error)
	Delete(ctx context.Context, id uint64) error
}

type PurchaseStore interface {
	Create(ctx context.Context, userID, ticketID uint64, quantity int64) (model.Purchase, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Purchase, error)
}
