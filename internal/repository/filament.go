package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filadex/filadex/internal/model"
)

// FilamentRepository persists and reads filaments. Reads join the vendors
// table so callers can see each filament's vendor by name.
type FilamentRepository struct {
	pool *pgxpool.Pool
}

// NewFilamentRepository returns a FilamentRepository using the given pool.
func NewFilamentRepository(pool *pgxpool.Pool) *FilamentRepository {
	return &FilamentRepository{pool: pool}
}

// Create inserts a new filament and returns it with ID and Registered set.
func (r *FilamentRepository) Create(ctx context.Context, f *model.Filament) error {
	query := `
		INSERT INTO filaments (
			name, vendor_id, material, price, density, diameter, weight,
			spool_weight, article_number, comment, settings_extruder_temp,
			settings_bed_temp, color_hex, multi_color_hexes,
			multi_color_direction, external_id, extra
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, registered`
	return r.pool.QueryRow(ctx, query,
		f.Name,
		f.VendorID,
		f.Material,
		f.Price,
		f.Density,
		f.Diameter,
		f.Weight,
		f.SpoolWeight,
		f.ArticleNumber,
		f.Comment,
		f.SettingsExtruderTemp,
		f.SettingsBedTemp,
		f.ColorHex,
		f.MultiColorHexes,
		f.MultiColorDirection,
		f.ExternalID,
		f.Extra,
	).Scan(&f.ID, &f.Registered)
}

const filamentSelect = `
	SELECT f.id, f.registered, f.name, f.vendor_id, f.material, f.price,
		f.density, f.diameter, f.weight, f.spool_weight, f.article_number,
		f.comment, f.settings_extruder_temp, f.settings_bed_temp, f.color_hex,
		f.multi_color_hexes, f.multi_color_direction, f.external_id, f.extra,
		v.id, v.registered, v.name, v.comment, v.empty_spool_weight,
		v.external_id, v.extra
	FROM filaments f
	LEFT JOIN vendors v ON v.id = f.vendor_id`

// FindByName returns all filaments with the exact given name, oldest first,
// each with its vendor populated when it has one.
func (r *FilamentRepository) FindByName(ctx context.Context, name string) ([]model.Filament, error) {
	rows, err := r.pool.Query(ctx, filamentSelect+`
		WHERE f.name = $1
		ORDER BY f.id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFilaments(rows)
}

// List returns all filaments ordered by id, each with its vendor populated.
func (r *FilamentRepository) List(ctx context.Context) ([]model.Filament, error) {
	rows, err := r.pool.Query(ctx, filamentSelect+`
		ORDER BY f.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFilaments(rows)
}

// joinedVendor receives the LEFT JOIN columns; every field is a pointer so
// a filament without a vendor scans as all-NULL.
type joinedVendor struct {
	ID               *int64
	Registered       *time.Time
	Name             *string
	Comment          *string
	EmptySpoolWeight *float64
	ExternalID       *string
	Extra            map[string]string
}

func scanFilaments(rows pgxRows) ([]model.Filament, error) {
	var list []model.Filament
	for rows.Next() {
		var f model.Filament
		var jv joinedVendor
		if err := rows.Scan(
			&f.ID,
			&f.Registered,
			&f.Name,
			&f.VendorID,
			&f.Material,
			&f.Price,
			&f.Density,
			&f.Diameter,
			&f.Weight,
			&f.SpoolWeight,
			&f.ArticleNumber,
			&f.Comment,
			&f.SettingsExtruderTemp,
			&f.SettingsBedTemp,
			&f.ColorHex,
			&f.MultiColorHexes,
			&f.MultiColorDirection,
			&f.ExternalID,
			&f.Extra,
			&jv.ID,
			&jv.Registered,
			&jv.Name,
			&jv.Comment,
			&jv.EmptySpoolWeight,
			&jv.ExternalID,
			&jv.Extra,
		); err != nil {
			return nil, err
		}
		if jv.ID != nil {
			f.Vendor = &model.Vendor{
				ID:               *jv.ID,
				Registered:       *jv.Registered,
				Name:             *jv.Name,
				Comment:          jv.Comment,
				EmptySpoolWeight: jv.EmptySpoolWeight,
				ExternalID:       jv.ExternalID,
				Extra:            jv.Extra,
			}
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
