package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/parkpass/ticketing-api/internal/model"
	"github.com/parkpass/ticketing-api/internal/repository"
	"github.com/parkpass/ticketing-api/internal/utils"
)

// fakeAdminStore mimics the user repository's check-then-insert contract
// with an in-memory map keyed by email.
type fakeAdminStore struct {
	users map[string]model.User
}

func (f *fakeAdminStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeAdminStore) Create(ctx context.Context, name, email, password, role string, cost int) (model.User, error) {
	if _, ok := f.users[email]; ok {
		return model.User{}, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{ID: uint64(len(f.users) + 1), Name: name, Email: email, PasswordHash: hash, Role: role}
	f.users[email] = u
	return u, nil
}

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	store := &fakeAdminStore{users: map[string]model.User{}}

	err := EnsureAdmin(context.Background(), store, "Admin@ParkPass.io", "admin1234", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.Len(t, store.users, 1)

	u := store.users["admin@parkpass.io"] // email normalized
	assert.Equal(t, model.RoleAdmin, u.Role)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "admin1234"))
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	store := &fakeAdminStore{users: map[string]model.User{}}
	ctx := context.Background()

	assert.NoError(t, EnsureAdmin(ctx, store, "admin@parkpass.io", "admin1234", bcrypt.MinCost))
	first := store.users["admin@parkpass.io"].PasswordHash

	// Second run with a different password must not reset credentials.
	assert.NoError(t, EnsureAdmin(ctx, store, "admin@parkpass.io", "changed-password", bcrypt.MinCost))
	assert.Len(t, store.users, 1)
	assert.Equal(t, first, store.users["admin@parkpass.io"].PasswordHash)
}

func TestEnsureAdmin_LostRaceIsNotAnError(t *testing.T) {
	store := &fakeAdminStore{users: map[string]model.User{}}
	// Simulate a concurrent boot inserting between the check and insert.
	raced := &racingStore{fakeAdminStore: store}

	assert.NoError(t, EnsureAdmin(context.Background(), raced, "admin@parkpass.io", "admin1234", bcrypt.MinCost))
	assert.Len(t, store.users, 1)
}

type racingStore struct {
	*fakeAdminStore
}

func (r *racingStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, err := r.fakeAdminStore.GetByEmail(ctx, email)
	if err == repository.ErrNotFound {
		// Another process wins the race right after the miss.
		_, _ = r.fakeAdminStore.Create(ctx, "Administrator", email, "other-pass", model.RoleAdmin, bcrypt.MinCost)
	}
	return u, err
}
