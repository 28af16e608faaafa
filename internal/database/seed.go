package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/parkpass/ticketing-api/internal/model"
	"github.com/parkpass/ticketing-api/internal/repository"
)

// AdminStore is the slice of the user repository the bootstrap needs.
type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, name, email, password, role string, cost int) (model.User, error)
}

// EnsureAdmin guarantees the well-known administrator account exists.
// It checks for the email before inserting and never touches an existing
// row, so rerunning it can neither duplicate the account nor reset the
// administrator's password. Safe to call on every startup.
func EnsureAdmin(ctx context.Context, store AdminStore, email, password string, bcryptCost int) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := store.GetByEmail(ctx, email)
	if err == nil {
		return nil // admin already present, leave credentials alone
	}
	if err != repository.ErrNotFound {
		return fmt.Errorf("admin lookup: %w", err)
	}
	_, err = store.Create(ctx, "Administrator", email, password, model.RoleAdmin, bcryptCost)
	if err != nil {
		// A concurrent boot may have inserted it first; the unique index
		// keeps the invariant either way.
		if err == repository.ErrEmailExists {
			return nil
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	log.Printf("seed: created administrator account %s", email)
	return nil
}

type sampleTicket struct {
	typ       string
	price     float64
	desc      string
	available int64
}

type sampleFacility struct {
	name, desc, image, category string
	tickets                     []sampleTicket
}

var samples = []sampleFacility{
	{
		name: "Thunder Loop", desc: "Triple-inversion steel coaster, 90 second ride.",
		image: "https://img.parkpass.io/thunder-loop.jpg", category: "ride",
		tickets: []sampleTicket{
			{"Adult", 50, "Riders 140cm and above", 200},
			{"Child", 30, "Riders 110-139cm with an adult", 100},
		},
	},
	{
		name: "Splash Canyon", desc: "Family raft ride through the water park canyon.",
		image: "https://img.parkpass.io/splash-canyon.jpg", category: "water",
		tickets: []sampleTicket{
			{"Standard", 35, "All ages, expect to get wet", 300},
		},
	},
	{
		name: "Starlight Parade", desc: "Evening light show on the main promenade.",
		image: "https://img.parkpass.io/starlight.jpg", category: "show",
		tickets: []sampleTicket{
			{"Reserved Seat", 20, "Front section seating", 150},
		},
	},
}

// SeedSampleCatalog inserts example facilities and tickets so a fresh
// instance has something to browse. It runs only when the facilities
// table is empty, which makes repeated startups a no-op.
func SeedSampleCatalog(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM facilities").Scan(&n); err != nil {
		return fmt.Errorf("count facilities: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, f := range samples {
		res, err := db.ExecContext(ctx,
			"INSERT INTO facilities (name, description, image_url, category) VALUES (?,?,?,?)",
			f.name, f.desc, f.image, f.category)
		if err != nil {
			return fmt.Errorf("seed facility %q: %w", f.name, err)
		}
		fid, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("seed facility %q id: %w", f.name, err)
		}
		for _, t := range f.tickets {
			_, err := db.ExecContext(ctx,
				"INSERT INTO tickets (facility_id, type, price, description, available, sold) VALUES (?,?,?,?,?,0)",
				fid, t.typ, t.price, t.desc, t.available)
			if err != nil {
				return fmt.Errorf("seed ticket %q/%q: %w", f.name, t.typ, err)
			}
		}
	}
	log.Printf("seed: inserted %d sample facilities", len(samples))
	return nil
}
