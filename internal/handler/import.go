package handler

import (
	"io"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/filadex/filadex/internal/importer"
	"github.com/filadex/filadex/internal/response"
)

// ImportHandler serves the bulk import endpoints. One uploaded file is one
// batch; the response reports per-row outcomes.
type ImportHandler struct {
	Importer *importer.Importer
	Log      zerolog.Logger
}

// ImportItemError is one failed row in an import response.
type ImportItemError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResponse is the outcome of an import batch. Failed rows keep only
// their row number and message here; the original record data stays internal.
type ImportResponse struct {
	Created int               `json:"created"`
	Failed  int               `json:"failed"`
	Errors  []ImportItemError `json:"errors"`
}

type importResource string

const (
	resourceVendors   importResource = "vendors"
	resourceFilaments importResource = "filaments"
	resourceSpools    importResource = "spools"
)

// ImportVendors imports vendors from an uploaded file (POST /import/vendors).
func (h *ImportHandler) ImportVendors(c echo.Context) error {
	return h.doImport(c, resourceVendors)
}

// ImportFilaments imports filaments from an uploaded file (POST /import/filaments).
func (h *ImportHandler) ImportFilaments(c echo.Context) error {
	return h.doImport(c, resourceFilaments)
}

// ImportSpools imports spools from an uploaded file (POST /import/spools).
func (h *ImportHandler) ImportSpools(c echo.Context) error {
	return h.doImport(c, resourceSpools)
}

func (h *ImportHandler) doImport(c echo.Context, resource importResource) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "missing upload", "form field 'file' is required")
	}

	format, err := importer.DetectFormat(fh.Filename)
	if err != nil {
		return response.BadRequest(c, "unsupported file format", err.Error())
	}

	f, err := fh.Open()
	if err != nil {
		return response.InternalError(c, "read upload", err.Error())
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return response.InternalError(c, "read upload", err.Error())
	}

	records, err := importer.Parse(string(content), format)
	if err != nil {
		// Batch-level failure: nothing was processed.
		h.Log.Warn().Err(err).Str("resource", string(resource)).Str("filename", fh.Filename).Msg("import parse failed")
		return response.BadRequest(c, "invalid file", err.Error())
	}

	ctx := c.Request().Context()
	var result *importer.Result
	switch resource {
	case resourceVendors:
		result = h.Importer.ImportVendors(ctx, records)
	case resourceFilaments:
		result = h.Importer.ImportFilaments(ctx, records)
	case resourceSpools:
		result = h.Importer.ImportSpools(ctx, records)
	default:
		return response.InternalError(c, "unknown resource", string(resource))
	}

	return response.OK(c, toImportResponse(result), "")
}

func toImportResponse(result *importer.Result) ImportResponse {
	out := ImportResponse{
		Created: result.Created,
		Failed:  result.Failed,
		Errors:  make([]ImportItemError, 0, len(result.Errors)),
	}
	for _, e := range result.Errors {
		out.Errors = append(out.Errors, ImportItemError{Row: e.Row, Error: e.Error})
	}
	return out
}
