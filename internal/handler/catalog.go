package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/filadex/filadex/internal/repository"
	"github.com/filadex/filadex/internal/response"
)

// CatalogHandler serves read endpoints over the inventory. An optional
// ?name= query switches a listing to an exact-name find.
type CatalogHandler struct {
	Vendors   *repository.VendorRepository
	Filaments *repository.FilamentRepository
	Spools    *repository.SpoolRepository
}

// ListVendors returns all vendors, or those matching ?name= (GET /vendors).
func (h *CatalogHandler) ListVendors(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.QueryParam("name")

	var err error
	var list any
	if name != "" {
		list, err = h.Vendors.FindByName(ctx, name)
	} else {
		list, err = h.Vendors.List(ctx)
	}
	if err != nil {
		return response.InternalError(c, "list vendors", err.Error())
	}
	return response.OK(c, map[string]any{"vendors": list}, "")
}

// ListFilaments returns all filaments, or those matching ?name= (GET /filaments).
func (h *CatalogHandler) ListFilaments(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.QueryParam("name")

	var err error
	var list any
	if name != "" {
		list, err = h.Filaments.FindByName(ctx, name)
	} else {
		list, err = h.Filaments.List(ctx)
	}
	if err != nil {
		return response.InternalError(c, "list filaments", err.Error())
	}
	return response.OK(c, map[string]any{"filaments": list}, "")
}

// ListSpools returns all spools (GET /spools).
func (h *CatalogHandler) ListSpools(c echo.Context) error {
	list, err := h.Spools.List(c.Request().Context())
	if err != nil {
		return response.InternalError(c, "list spools", err.Error())
	}
	return response.OK(c, map[string]any{"spools": list}, "")
}
