package model

import "time"

// Vendor is a filament manufacturer or reseller.
type Vendor struct {
	ID               int64             `db:"id" json:"id"`
	Registered       time.Time         `db:"registered" json:"registered"`
	Name             string            `db:"name" json:"name"`
	Comment          *string           `db:"comment" json:"comment,omitempty"`
	EmptySpoolWeight *float64          `db:"empty_spool_weight" json:"empty_spool_weight,omitempty"`
	ExternalID       *string           `db:"external_id" json:"external_id,omitempty"`
	Extra            map[string]string `db:"extra" json:"extra,omitempty"`
}
