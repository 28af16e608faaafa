package repository

import (
	"context"
	"database/sql"

	"github.com/parkpass/ticketing-api/internal/model"
)

// PurchaseRepo records ticket purchases and adjusts inventory. The two
// writes (counter adjustment, purchase insert) share one transaction so a
// purchase row can never exist without its inventory effect.
type PurchaseRepo struct{ DB *sql.DB }

func NewPurchaseRepo(db *sql.DB) *PurchaseRepo { return &PurchaseRepo{DB: db} }

// Create buys quantity units of a ticket for a user. Price, type and the
// facility name are snapshotted from the ticket row inside the
// transaction; the total is price x quantity by construction.
//
// The counter adjustment is a single conditional UPDATE executed by the
// store, not a read-modify-write, so concurrent purchases of the same
// ticket cannot lose updates and `available` cannot go negative: when
// fewer than quantity tickets remain the update matches zero rows and
// the purchase fails with ErrInsufficientStock.
func (r *PurchaseRepo) Create(ctx context.Context, userID, ticketID uint64, quantity int64) (model.Purchase, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Purchase{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var (
		facilityName string
		typ          string
		price        float64
	)
	err = tx.QueryRowContext(ctx,
		`SELECT f.name, t.type, t.price FROM tickets t
		 JOIN facilities f ON f.id = t.facility_id
		 WHERE t.id=? LIMIT 1`, ticketID).Scan(&facilityName, &typ, &price)
	if err == sql.ErrNoRows {
		return model.Purchase{}, ErrNotFound
	}
	if err != nil {
		return model.Purchase{}, err
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE tickets SET sold = sold + ?, available = available - ? WHERE id=? AND available >= ?",
		quantity, quantity, ticketID, quantity)
	if err != nil {
		return model.Purchase{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Purchase{}, err
	}
	if n == 0 {
		return model.Purchase{}, ErrInsufficientStock
	}

	total := price * float64(quantity)
	ins, err := tx.ExecContext(ctx,
		`INSERT INTO purchases (user_id, ticket_id, facility_name, type, price, quantity, total)
		 VALUES (?,?,?,?,?,?,?)`,
		userID, ticketID, facilityName, typ, price, quantity, total)
	if err != nil {
		return model.Purchase{}, err
	}
	id, err := ins.LastInsertId()
	if err != nil {
		return model.Purchase{}, err
	}

	var p model.Purchase
	err = tx.QueryRowContext(ctx,
		`SELECT id,user_id,ticket_id,facility_name,type,price,quantity,total,created_at
		 FROM purchases WHERE id=?`, id).Scan(
		&p.ID, &p.UserID, &p.TicketID, &p.FacilityName, &p.Type, &p.Price,
		&p.Quantity, &p.Total, &p.CreatedAt)
	if err != nil {
		return model.Purchase{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

// ListByUser returns a user's purchases newest-first.
func (r *PurchaseRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Purchase, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,user_id,ticket_id,facility_name,type,price,quantity,total,created_at
		 FROM purchases WHERE user_id=? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Purchase{}
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.TicketID, &p.FacilityName, &p.Type,
			&p.Price, &p.Quantity, &p.Total, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
