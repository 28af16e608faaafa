package repository

import (
	"context"
	"database/sql"

	"github.com/parkpass/ticketing-api/internal/model"
)

// TicketRepo provides access to the `tickets` table. Listings join the
// owning facility's name in at read time; the name is never stored on the
// ticket row.
type TicketRepo struct{ DB *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{DB: db} }

const ticketSelect = `SELECT t.id, t.facility_id, f.name, t.type, t.price,
	t.description, t.available, t.sold, t.created_at
	FROM tickets t JOIN facilities f ON f.id = t.facility_id`

func scanTicket(row *sql.Row) (model.Ticket, error) {
	var t model.Ticket
	err := row.Scan(&t.ID, &t.FacilityID, &t.FacilityName, &t.Type, &t.Price,
		&t.Description, &t.Available, &t.Sold, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Ticket{}, ErrNotFound
	}
	return t, err
}

// Create inserts a ticket for an existing facility. The facility is
// verified first so a bad id surfaces as ErrNotFound rather than a
// foreign-key failure.
func (r *TicketRepo) Create(ctx context.Context, facilityID uint64, typ string, price float64, description string, available int64) (model.Ticket, error) {
	var fid uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM facilities WHERE id=? LIMIT 1", facilityID).Scan(&fid)
	if err == sql.ErrNoRows {
		return model.Ticket{}, ErrNotFound
	}
	if err != nil {
		return model.Ticket{}, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO tickets (facility_id, type, price, description, available, sold) VALUES (?,?,?,?,?,0)",
		facilityID, typ, price, description, available)
	if err != nil {
		return model.Ticket{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Ticket{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches one ticket enriched with its facility name.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (model.Ticket, error) {
	return scanTicket(r.DB.QueryRowContext(ctx, ticketSelect+" WHERE t.id=? LIMIT 1", id))
}

// List returns all tickets newest-first, each enriched with the owning
// facility's name. The inner join silently skips a ticket whose facility
// is gone; cascade deletion makes that state unreachable in practice.
func (r *TicketRepo) List(ctx context.Context) ([]model.Ticket, error) {
	rows, err := r.DB.QueryContext(ctx, ticketSelect+" ORDER BY t.created_at DESC, t.id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Ticket{}
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.FacilityID, &t.FacilityName, &t.Type, &t.Price,
			&t.Description, &t.Available, &t.Sold, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// TicketPatch carries the optional fields of a partial update. A nil
// pointer means "leave unchanged"; JSON null binds to nil and therefore
// also leaves the field alone.
type TicketPatch struct {
	Type        *string  `json:"type"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Available   *int64   `json:"available"`
	Sold        *int64   `json:"sold"`
}

// Update applies only the supplied fields and returns the enriched row.
// Returns ErrNotFound for unknown ids.
func (r *TicketRepo) Update(ctx context.Context, id uint64, p TicketPatch) (model.Ticket, error) {
	sets := []string{}
	args := []interface{}{}
	if p.Type != nil {
		sets = append(sets, "type=?")
		args = append(args, *p.Type)
	}
	if p.Price != nil {
		sets = append(sets, "price=?")
		args = append(args, *p.Price)
	}
	if p.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *p.Description)
	}
	if p.Available != nil {
		sets = append(sets, "available=?")
		args = append(args, *p.Available)
	}
	if p.Sold != nil {
		sets = append(sets, "sold=?")
		args = append(args, *p.Sold)
	}
	if len(sets) == 0 {
		// Nothing to change; still 404 for unknown ids.
		return r.GetByID(ctx, id)
	}
	query := "UPDATE tickets SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += " WHERE id=?"
	args = append(args, id)

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return model.Ticket{}, err
	}
	// Zero rows affected is ambiguous (unknown id vs. identical values);
	// the read-back resolves it and returns ErrNotFound when appropriate.
	return r.GetByID(ctx, id)
}

// Delete removes a ticket. Returns ErrNotFound when no row matched.
func (r *TicketRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM tickets WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
