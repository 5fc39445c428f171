package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filadex/filadex/internal/model"
)

// VendorRepository persists and reads vendors.
type VendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository returns a VendorRepository using the given pool.
func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

// Create inserts a new vendor and returns it with ID and Registered set.
func (r *VendorRepository) Create(ctx context.Context, v *model.Vendor) error {
	query := `
		INSERT INTO vendors (name, comment, empty_spool_weight, external_id, extra)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, registered`
	return r.pool.QueryRow(ctx, query,
		v.Name,
		v.Comment,
		v.EmptySpoolWeight,
		v.ExternalID,
		v.Extra,
	).Scan(&v.ID, &v.Registered)
}

// FindByName returns all vendors with the exact given name, oldest first.
func (r *VendorRepository) FindByName(ctx context.Context, name string) ([]model.Vendor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, registered, name, comment, empty_spool_weight, external_id, extra
		FROM vendors
		WHERE name = $1
		ORDER BY id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVendors(rows)
}

// List returns all vendors ordered by id.
func (r *VendorRepository) List(ctx context.Context) ([]model.Vendor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, registered, name, comment, empty_spool_weight, external_id, extra
		FROM vendors
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVendors(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanVendors(rows pgxRows) ([]model.Vendor, error) {
	var list []model.Vendor
	for rows.Next() {
		var v model.Vendor
		if err := rows.Scan(
			&v.ID,
			&v.Registered,
			&v.Name,
			&v.Comment,
			&v.EmptySpoolWeight,
			&v.ExternalID,
			&v.Extra,
		); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
