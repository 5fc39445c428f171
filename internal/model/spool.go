package model

import "time"

// Spool is one physical spool of a filament type.
type Spool struct {
	ID              int64             `db:"id" json:"id"`
	Registered      time.Time         `db:"registered" json:"registered"`
	FilamentID      int64             `db:"filament_id" json:"filament_id"`
	Price           *float64          `db:"price" json:"price,omitempty"`
	InitialWeight   *float64          `db:"initial_weight" json:"initial_weight,omitempty"`
	SpoolWeight     *float64          `db:"spool_weight" json:"spool_weight,omitempty"`
	UsedWeight      *float64          `db:"used_weight" json:"used_weight,omitempty"`
	RemainingWeight *float64          `db:"remaining_weight" json:"remaining_weight,omitempty"`
	Location        *string           `db:"location" json:"location,omitempty"`
	LotNr           *string           `db:"lot_nr" json:"lot_nr,omitempty"`
	Comment         *string           `db:"comment" json:"comment,omitempty"`
	Archived        bool              `db:"archived" json:"archived"`
	Extra           map[string]string `db:"extra" json:"extra,omitempty"`
}
