package model

import "time"

// Filament is a type of filament from a vendor, e.g. a specific PLA color.
// Density and diameter are always known; everything else is optional.
type Filament struct {
	ID                   int64             `db:"id" json:"id"`
	Registered           time.Time         `db:"registered" json:"registered"`
	Name                 *string           `db:"name" json:"name,omitempty"`
	VendorID             *int64            `db:"vendor_id" json:"vendor_id,omitempty"`
	Material             *string           `db:"material" json:"material,omitempty"`
	Price                *float64          `db:"price" json:"price,omitempty"`
	Density              float64           `db:"density" json:"density"`
	Diameter             float64           `db:"diameter" json:"diameter"`
	Weight               *float64          `db:"weight" json:"weight,omitempty"`
	SpoolWeight          *float64          `db:"spool_weight" json:"spool_weight,omitempty"`
	ArticleNumber        *string           `db:"article_number" json:"article_number,omitempty"`
	Comment              *string           `db:"comment" json:"comment,omitempty"`
	SettingsExtruderTemp *int              `db:"settings_extruder_temp" json:"settings_extruder_temp,omitempty"`
	SettingsBedTemp      *int              `db:"settings_bed_temp" json:"settings_bed_temp,omitempty"`
	ColorHex             *string           `db:"color_hex" json:"color_hex,omitempty"`
	MultiColorHexes      *string           `db:"multi_color_hexes" json:"multi_color_hexes,omitempty"`
	MultiColorDirection  *string           `db:"multi_color_direction" json:"multi_color_direction,omitempty"`
	ExternalID           *string           `db:"external_id" json:"external_id,omitempty"`
	Extra                map[string]string `db:"extra" json:"extra,omitempty"`

	// Vendor is populated on reads that join the vendors table. Not a column.
	Vendor *Vendor `db:"-" json:"vendor,omitempty"`
}
