package importer

import "context"

// Resolution turns a human-readable name reference from a record into the id
// of an already-persisted entity. Lookups are read-only; whether a failed
// resolution is fatal for the record is decided by the importer that asked.

// resolveVendor finds a vendor id by exact name. A missing vendor is not an
// error: vendor references are optional and the id stays nil.
func (im *Importer) resolveVendor(ctx context.Context, name string) (*int64, error) {
	vendors, err := im.vendors.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, nil
	}
	return &vendors[0].ID, nil
}

// resolveFilament finds a filament id by exact name, optionally narrowed to
// filaments whose vendor has the given name. The first remaining candidate
// wins; no candidate leaves the id nil.
func (im *Importer) resolveFilament(ctx context.Context, name, vendorName string) (*int64, error) {
	filaments, err := im.filaments.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if vendorName != "" {
		matched := filaments[:0]
		for _, f := range filaments {
			if f.Vendor != nil && f.Vendor.Name == vendorName {
				matched = append(matched, f)
			}
		}
		filaments = matched
	}
	if len(filaments) == 0 {
		return nil, nil
	}
	return &filaments[0].ID, nil
}
