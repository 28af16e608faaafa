package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/parkpass/ticketing-api/internal/model"
	"github.com/parkpass/ticketing-api/internal/repository"
)

// --- Mock FacilityStore ---

type mockFacilityStore struct {
	createFn func(ctx context.Context, name, description, imageURL, category string) (model.Facility, error)
	listFn   func(ctx context.Context) ([]model.Facility, error)
	deleteFn func(ctx context.Context, id uint64) error
}

func (m *mockFacilityStore) Create(ctx context.Context, name, description, imageURL, category string) (model.Facility, error) {
	return m.createFn(ctx, name, description, imageURL, category)
}
func (m *mockFacilityStore) List(ctx context.Context) ([]model.Facility, error) {
	return m.listFn(ctx)
}
func (m *mockFacilityStore) Delete(ctx context.Context, id uint64) error {
	return m.deleteFn(ctx, id)
}

// --- Tests ---

func TestCreateFacility_DefaultsCategory(t *testing.T) {
	var gotCategory string
	store := &mockFacilityStore{
		createFn: func(ctx context.Context, name, description, imageURL, category string) (model.Facility, error) {
			gotCategory = category
			return model.Facility{ID: 1, Name: name, Description: description, Category: category}, nil
		},
	}
	h := NewFacilityHandler(store)

	rec, err := doJSON(h.Create, http.MethodPost, "/api/facilities",
		`{"name":"Thunder Loop","description":"Steel coaster"}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.CategoryRide, gotCategory)
}

func TestCreateFacility_MissingFields(t *testing.T) {
	h := NewFacilityHandler(&mockFacilityStore{})

	for _, body := range []string{
		`{"description":"no name"}`,
		`{"name":"no description"}`,
		`{"name":"   ","description":"blank name"}`,
	} {
		rec, err := doJSON(h.Create, http.MethodPost, "/api/facilities", body)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestCreateFacility_UnknownCategory(t *testing.T) {
	h := NewFacilityHandler(&mockFacilityStore{})

	rec, err := doJSON(h.Create, http.MethodPost, "/api/facilities",
		`{"name":"X","description":"Y","category":"spaceship"}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFacilities(t *testing.T) {
	store := &mockFacilityStore{
		listFn: func(ctx context.Context) ([]model.Facility, error) {
			return []model.Facility{{ID: 2, Name: "Newer"}, {ID: 1, Name: "Older"}}, nil
		},
	}
	h := NewFacilityHandler(store)

	rec, err := doJSON(h.List, http.MethodGet, "/api/facilities", "")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var out []model.Facility
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, uint64(2), out[0].ID)
}

func deleteReq(h echo.HandlerFunc, id string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return rec, h(c)
}

func TestDeleteFacility_NotFound(t *testing.T) {
	store := &mockFacilityStore{
		deleteFn: func(ctx context.Context, id uint64) error { return repository.ErrNotFound },
	}
	h := NewFacilityHandler(store)

	rec, err := deleteReq(h.Delete, "99")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteFacility_Success(t *testing.T) {
	var gotID uint64
	store := &mockFacilityStore{
		deleteFn: func(ctx context.Context, id uint64) error { gotID = id; return nil },
	}
	h := NewFacilityHandler(store)

	rec, err := deleteReq(h.Delete, "7")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(7), gotID)
	assert.Contains(t, rec.Body.String(), "deleted")
}

func TestDeleteFacility_BadID(t *testing.T) {
	h := NewFacilityHandler(&mockFacilityStore{})

	rec, err := deleteReq(h.Delete, "abc")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
