package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/parkpass/ticketing-api/internal/model"
	"github.com/parkpass/ticketing-api/internal/repository"
)

// --- Mock TicketStore ---

type mockTicketStore struct {
	createFn func(ctx context.Context, facilityID uint64, typ string, price float64, description string, available int64) (model.Ticket, error)
	listFn   func(ctx context.Context) ([]model.Ticket, error)
	updateFn func(ctx context.Context, id uint64, patch repository.TicketPatch) (model.Ticket, error)
	deleteFn func(ctx context.Context, id uint64) error
}

func (m *mockTicketStore) Create(ctx context.Context, facilityID uint64, typ string, price float64, description string, available int64) (model.Ticket, error) {
	return m.createFn(ctx, facilityID, typ, price, description, available)
}
func (m *mockTicketStore) List(ctx context.Context) ([]model.Ticket, error) { return m.listFn(ctx) }
func (m *mockTicketStore) Update(ctx context.Context, id uint64, patch repository.TicketPatch) (model.Ticket, error) {
	return m.updateFn(ctx, id, patch)
}
func (m *mockTicketStore) Delete(ctx context.Context, id uint64) error { return m.deleteFn(ctx, id) }

func patchReq(h echo.HandlerFunc, id, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return rec, h(c)
}

// --- Tests ---

func TestCreateTicket_UnknownFacility(t *testing.T) {
	store := &mockTicketStore{
		createFn: func(ctx context.Context, facilityID uint64, typ string, price float64, description string, available int64) (model.Ticket, error) {
			return model.Ticket{}, repository.ErrNotFound
		},
	}
	h := NewTicketHandler(store)

	rec, err := doJSON(h.Create, http.MethodPost, "/api/tickets",
		`{"facility_id":999,"type":"Adult","price":50,"available":10}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateTicket_Validation(t *testing.T) {
	h := NewTicketHandler(&mockTicketStore{})

	for _, body := range []string{
		`{"type":"Adult","price":50,"available":10}`,                // missing facility_id
		`{"facility_id":1,"price":50,"available":10}`,               // missing type
		`{"facility_id":1,"type":"Adult","price":-1}`,               // negative price
		`{"facility_id":1,"type":"Adult","price":5,"available":-3}`, // negative available
	} {
		rec, err := doJSON(h.Create, http.MethodPost, "/api/tickets", body)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestCreateTicket_Success(t *testing.T) {
	store := &mockTicketStore{
		createFn: func(ctx context.Context, facilityID uint64, typ string, price float64, description string, available int64) (model.Ticket, error) {
			return model.Ticket{ID: 3, FacilityID: facilityID, FacilityName: "Thunder Loop",
				Type: typ, Price: price, Available: available}, nil
		},
	}
	h := NewTicketHandler(store)

	rec, err := doJSON(h.Create, http.MethodPost, "/api/tickets",
		`{"facility_id":1,"type":"Adult","price":50,"available":10}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thunder Loop") // enriched with facility name
}

func TestUpdateTicket_PartialFields(t *testing.T) {
	var gotPatch repository.TicketPatch
	store := &mockTicketStore{
		updateFn: func(ctx context.Context, id uint64, patch repository.TicketPatch) (model.Ticket, error) {
			gotPatch = patch
			return model.Ticket{ID: id, Price: *patch.Price}, nil
		},
	}
	h := NewTicketHandler(store)

	// description is explicit null: treated as "not supplied", not "clear".
	rec, err := patchReq(h.Update, "4", `{"price":75,"description":null}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NotNil(t, gotPatch.Price)
	assert.Equal(t, 75.0, *gotPatch.Price)
	assert.Nil(t, gotPatch.Description)
	assert.Nil(t, gotPatch.Type)
	assert.Nil(t, gotPatch.Available)
	assert.Nil(t, gotPatch.Sold)
}

func TestUpdateTicket_NotFound(t *testing.T) {
	store := &mockTicketStore{
		updateFn: func(ctx context.Context, id uint64, patch repository.TicketPatch) (model.Ticket, error) {
			return model.Ticket{}, repository.ErrNotFound
		},
	}
	h := NewTicketHandler(store)

	rec, err := patchReq(h.Update, "404", `{"price":75}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTicket_NegativePriceRejected(t *testing.T) {
	h := NewTicketHandler(&mockTicketStore{})

	rec, err := patchReq(h.Update, "4", `{"price":-10}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTicket_NegativeCountersRejected(t *testing.T) {
	var called bool
	store := &mockTicketStore{
		updateFn: func(ctx context.Context, id uint64, patch repository.TicketPatch) (model.Ticket, error) {
			called = true
			return model.Ticket{ID: id}, nil
		},
	}
	h := NewTicketHandler(store)

	for _, body := range []string{
		`{"sold":-5}`,
		`{"available":-1}`,
	} {
		rec, err := patchReq(h.Update, "4", body)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
	// Rejected patches never reach the store.
	assert.False(t, called)
}

func TestDeleteTicket_NotFound(t *testing.T) {
	store := &mockTicketStore{
		deleteFn: func(ctx context.Context, id uint64) error { return repository.ErrNotFound },
	}
	h := NewTicketHandler(store)

	rec, err := deleteReq(h.Delete, "8")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
