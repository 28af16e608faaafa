package repository

import (
	"context"
	"database/sql"

	"github.com/parkpass/ticketing-api/internal/model"
)

// FacilityRepo provides access to the `facilities` table.
type FacilityRepo struct{ DB *sql.DB }

func NewFacilityRepo(db *sql.DB) *FacilityRepo { return &FacilityRepo{DB: db} }

// Create inserts a facility and returns the stored row.
func (r *FacilityRepo) Create(ctx context.Context, name, description, imageURL, category string) (model.Facility, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO facilities (name, description, image_url, category) VALUES (?,?,?,?)",
		name, description, imageURL, category)
	if err != nil {
		return model.Facility{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Facility{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a facility by id. Returns ErrNotFound for unknown ids.
func (r *FacilityRepo) GetByID(ctx context.Context, id uint64) (model.Facility, error) {
	var f model.Facility
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,description,image_url,category,created_at FROM facilities WHERE id=? LIMIT 1",
		id).Scan(&f.ID, &f.Name, &f.Description, &f.ImageURL, &f.Category, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Facility{}, ErrNotFound
	}
	return f, err
}

// List returns all facilities newest-first.
func (r *FacilityRepo) List(ctx context.Context) ([]model.Facility, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,description,image_url,category,created_at FROM facilities ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Facility{}
	for rows.Next() {
		var f model.Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.ImageURL, &f.Category, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Delete removes a facility and every ticket referencing it inside one
// transaction: tickets go first so no orphaned reference can survive a
// partial failure. Returns ErrNotFound when the id does not resolve.
func (r *FacilityRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var exists uint64
	if err := tx.QueryRowContext(ctx,
		"SELECT id FROM facilities WHERE id=? LIMIT 1", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM tickets WHERE facility_id=?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM facilities WHERE id=?", id); err != nil {
		return err
	}
	return tx.Commit()
}
