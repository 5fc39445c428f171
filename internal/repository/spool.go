package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filadex/filadex/internal/model"
)

// SpoolRepository persists and reads spools.
type SpoolRepository struct {
	pool *pgxpool.Pool
}

// NewSpoolRepository returns a SpoolRepository using the given pool.
func NewSpoolRepository(pool *pgxpool.Pool) *SpoolRepository {
	return &SpoolRepository{pool: pool}
}

// Create inserts a new spool and returns it with ID and Registered set.
func (r *SpoolRepository) Create(ctx context.Context, s *model.Spool) error {
	query := `
		INSERT INTO spools (
			filament_id, price, initial_weight, spool_weight, used_weight,
			remaining_weight, location, lot_nr, comment, archived, extra
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, registered`
	return r.pool.QueryRow(ctx, query,
		s.FilamentID,
		s.Price,
		s.InitialWeight,
		s.SpoolWeight,
		s.UsedWeight,
		s.RemainingWeight,
		s.Location,
		s.LotNr,
		s.Comment,
		s.Archived,
		s.Extra,
	).Scan(&s.ID, &s.Registered)
}

// List returns all spools ordered by id.
func (r *SpoolRepository) List(ctx context.Context) ([]model.Spool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, registered, filament_id, price, initial_weight, spool_weight,
			used_weight, remaining_weight, location, lot_nr, comment, archived, extra
		FROM spools
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Spool
	for rows.Next() {
		var s model.Spool
		if err := rows.Scan(
			&s.ID,
			&s.Registered,
			&s.FilamentID,
			&s.Price,
			&s.InitialWeight,
			&s.SpoolWeight,
			&s.UsedWeight,
			&s.RemainingWeight,
			&s.Location,
			&s.LotNr,
			&s.Comment,
			&s.Archived,
			&s.Extra,
		); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
