package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/filadex/filadex/internal/model"
)

// VendorStore is the persistence surface the importer needs for vendors.
// Create assigns ID and Registered on success; FindByName returns matches
// ordered by insertion.
type VendorStore interface {
	Create(ctx context.Context, v *model.Vendor) error
	FindByName(ctx context.Context, name string) ([]model.Vendor, error)
}

// FilamentStore is the persistence surface for filaments. FindByName
// populates each result's Vendor so callers can filter by vendor name.
type FilamentStore interface {
	Create(ctx context.Context, f *model.Filament) error
	FindByName(ctx context.Context, name string) ([]model.Filament, error)
}

// SpoolStore is the persistence surface for spools.
type SpoolStore interface {
	Create(ctx context.Context, s *model.Spool) error
}

// Importer turns parsed record batches into entity creations. Each record is
// one independent unit of work: a bad record is reported and the batch moves
// on. Processing is strictly sequential so row numbers in the result always
// match 1-based input position.
type Importer struct {
	vendors   VendorStore
	filaments FilamentStore
	spools    SpoolStore
	log       zerolog.Logger
}

// New returns an Importer over the given stores.
func New(vendors VendorStore, filaments FilamentStore, spools SpoolStore, log zerolog.Logger) *Importer {
	return &Importer{
		vendors:   vendors,
		filaments: filaments,
		spools:    spools,
		log:       log,
	}
}

// RowError describes one record that did not produce an entity.
type RowError struct {
	Row   int    // 1-based position in the input sequence
	Data  Record // the original, unmodified record
	Error string
}

// Result is the aggregate outcome of one import batch.
// Created + Failed always equals the number of records processed.
type Result struct {
	Created int
	Failed  int
	Errors  []RowError
}

func (r *Result) addError(row int, data Record, msg string) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: row, Data: data, Error: msg})
}

// ImportVendors imports vendor records. The batch itself never fails; each
// record ends up either counted in Created or described in Errors.
func (im *Importer) ImportVendors(ctx context.Context, records []Record) *Result {
	result := &Result{}
	log := im.batchLogger("vendors")

	for i, rec := range records {
		row := i + 1
		vendor, err := im.importVendor(ctx, rec)
		if err != nil {
			result.addError(row, rec, err.Error())
			log.Warn().Int("row", row).Err(err).Msg("vendor import failed")
			continue
		}
		result.Created++
		log.Info().Int64("id", vendor.ID).Str("name", vendor.Name).Msg("imported vendor")
	}
	return result
}

// ImportFilaments imports filament records.
func (im *Importer) ImportFilaments(ctx context.Context, records []Record) *Result {
	result := &Result{}
	log := im.batchLogger("filaments")

	for i, rec := range records {
		row := i + 1
		filament, err := im.importFilament(ctx, rec)
		if err != nil {
			result.addError(row, rec, err.Error())
			log.Warn().Int("row", row).Err(err).Msg("filament import failed")
			continue
		}
		result.Created++
		log.Info().Int64("id", filament.ID).Msg("imported filament")
	}
	return result
}

// ImportSpools imports spool records.
func (im *Importer) ImportSpools(ctx context.Context, records []Record) *Result {
	result := &Result{}
	log := im.batchLogger("spools")

	for i, rec := range records {
		row := i + 1
		spool, err := im.importSpool(ctx, rec)
		if err != nil {
			result.addError(row, rec, err.Error())
			log.Warn().Int("row", row).Err(err).Msg("spool import failed")
			continue
		}
		result.Created++
		log.Info().Int64("id", spool.ID).Int64("filament_id", spool.FilamentID).Msg("imported spool")
	}
	return result
}

func (im *Importer) batchLogger(resource string) zerolog.Logger {
	return im.log.With().
		Str("batch", uuid.New().String()[:8]).
		Str("resource", resource).
		Logger()
}

// importVendor processes one vendor record: coerce fields, check required
// fields, create. Field checks run before the create call so a record that
// violates both reports the field violation.
func (im *Importer) importVendor(ctx context.Context, rec Record) (vendor *model.Vendor, err error) {
	defer recoverRecordPanic(&err)

	name := ""
	if s := stringValue(rec["name"]); s != nil {
		name = strings.TrimSpace(*s)
	}
	if name == "" {
		return nil, errors.New("'name' is required")
	}

	vendor = &model.Vendor{
		Name:             name,
		Comment:          stringValue(rec["comment"]),
		EmptySpoolWeight: floatValue(rec["empty_spool_weight"]),
		ExternalID:       stringValue(rec["external_id"]),
		Extra:            extraOrNil(rec),
	}
	if err := im.vendors.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// importFilament processes one filament record. Density and diameter are
// required; the vendor reference is optional and resolved by name.
func (im *Importer) importFilament(ctx context.Context, rec Record) (filament *model.Filament, err error) {
	defer recoverRecordPanic(&err)

	density := floatValue(rec["density"])
	diameter := floatValue(rec["diameter"])
	if density == nil {
		return nil, errors.New("'density' is required")
	}
	if diameter == nil {
		return nil, errors.New("'diameter' is required")
	}

	var vendorID *int64
	if name := trimmedString(rec["vendor.name"]); name != nil {
		vendorID, err = im.resolveVendor(ctx, *name)
		if err != nil {
			return nil, err
		}
	}

	filament = &model.Filament{
		Name:                 trimmedString(rec["name"]),
		VendorID:             vendorID,
		Material:             trimmedString(rec["material"]),
		Price:                floatValue(rec["price"]),
		Density:              *density,
		Diameter:             *diameter,
		Weight:               floatValue(rec["weight"]),
		SpoolWeight:          floatValue(rec["spool_weight"]),
		ArticleNumber:        trimmedString(rec["article_number"]),
		Comment:              stringValue(rec["comment"]),
		SettingsExtruderTemp: intValue(rec["settings_extruder_temp"]),
		SettingsBedTemp:      intValue(rec["settings_bed_temp"]),
		ColorHex:             stringValue(rec["color_hex"]),
		MultiColorHexes:      stringValue(rec["multi_color_hexes"]),
		MultiColorDirection:  stringValue(rec["multi_color_direction"]),
		ExternalID:           stringValue(rec["external_id"]),
		Extra:                extraOrNil(rec),
	}
	if err := im.filaments.Create(ctx, filament); err != nil {
		return nil, err
	}
	return filament, nil
}

// importSpool processes one spool record. The filament reference must resolve
// to exactly one id, optionally disambiguated by the filament's vendor name;
// without it the record fails and no create is attempted.
func (im *Importer) importSpool(ctx context.Context, rec Record) (spool *model.Spool, err error) {
	defer recoverRecordPanic(&err)

	var filamentID *int64
	filamentName := trimmedString(rec["filament.name"])
	if filamentName != nil {
		vendorName := ""
		if s := trimmedString(rec["filament.vendor.name"]); s != nil {
			vendorName = *s
		}
		filamentID, err = im.resolveFilament(ctx, *filamentName, vendorName)
		if err != nil {
			return nil, err
		}
	}
	if filamentID == nil {
		ref := ""
		if filamentName != nil {
			ref = *filamentName
		}
		return nil, fmt.Errorf("could not find filament: %q", ref)
	}

	archived := false
	if b := boolValue(rec["archived"]); b != nil {
		archived = *b
	}

	spool = &model.Spool{
		FilamentID:      *filamentID,
		Price:           floatValue(rec["price"]),
		InitialWeight:   floatValue(rec["initial_weight"]),
		SpoolWeight:     floatValue(rec["spool_weight"]),
		UsedWeight:      floatValue(rec["used_weight"]),
		RemainingWeight: floatValue(rec["remaining_weight"]),
		Location:        trimmedString(rec["location"]),
		LotNr:           trimmedString(rec["lot_nr"]),
		Comment:         stringValue(rec["comment"]),
		Archived:        archived,
		Extra:           extraOrNil(rec),
	}
	if err := im.spools.Create(ctx, spool); err != nil {
		return nil, err
	}
	return spool, nil
}

// recoverRecordPanic converts a panic during record processing into that
// record's failure, so one record can never take down the batch.
func recoverRecordPanic(err *error) {
	if p := recover(); p != nil {
		*err = fmt.Errorf("unexpected error: %v", p)
	}
}
