package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

const maxSearchLen = 100

// CatalogHandler serves the static sector reference data.
type CatalogHandler struct {
	catalog ports.SectorCatalog
}

func NewCatalogHandler(catalog ports.SectorCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Categories handles GET /v1/catalog/categories.
//
// @Summary      List sector categories with their sector counts
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  categoryListResponse
// @Router       /v1/catalog/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	cats := h.catalog.Categories()
	return c.JSON(http.StatusOK, categoryListResponse{Categories: cats, Count: len(cats)})
}

// SectorsInCategory handles GET /v1/catalog/categories/:category/sectors.
//
// @Summary      List the sectors of a category in catalog order
// @Tags         catalog
// @Produce      json
// @Param        category  path      string  true  "Category id"
// @Success      200       {object}  sectorListResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/catalog/categories/{category}/sectors [get]
func (h *CatalogHandler) SectorsInCategory(c echo.Context) error {
	id, err := url.PathUnescape(c.Param("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if _, ok := h.catalog.Category(id); !ok {
		return fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, id)
	}
	sectors := h.catalog.SectorsIn(id)
	return c.JSON(http.StatusOK, sectorListResponse{Sectors: sectors, Count: len(sectors)})
}

// Sectors handles GET /v1/catalog/sectors.
//
// Without a search term the whole catalog is returned.
//
// @Summary      Search sectors
// @Tags         catalog
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive term matched against name, description and tags"
// @Success      200     {object}  sectorListResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/catalog/sectors [get]
func (h *CatalogHandler) Sectors(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("search"))
	if len(term) > maxSearchLen {
		return echo.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("search must be at most %d characters", maxSearchLen))
	}

	var sectors []domain.Sector
	if term == "" {
		sectors = h.catalog.Sectors()
	} else {
		sectors = h.catalog.Search(term)
	}
	return c.JSON(http.StatusOK, sectorListResponse{Sectors: sectors, Count: len(sectors)})
}

// Sector handles GET /v1/catalog/sectors/:name.
//
// @Summary      Look up a sector by exact name
// @Tags         catalog
// @Produce      json
// @Param        name  path      string  true  "Sector name"
// @Success      200   {object}  domain.Sector
// @Failure      404   {object}  errorResponse
// @Router       /v1/catalog/sectors/{name} [get]
func (h *CatalogHandler) Sector(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid sector name")
	}
	s, ok := h.catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrSectorNotFound, name)
	}
	return c.JSON(http.StatusOK, s)
}
