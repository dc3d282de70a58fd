package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/underwaterhousings/catalog_api/internal/service"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

// CatalogHandler serves the public catalog API.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// housingFilters echoes the raw query of GET /api/housings.
type housingFilters struct {
	Manufacturer *string `json:"manufacturer"`
	Category     *string `json:"category"`
	InStock      *string `json:"inStock"`
	MaxPrice     *string `json:"maxPrice"`
}

func queryPtr(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok && v != "" {
		return &v
	}
	return nil
}

// GetManufacturers lists housing manufacturers.
// GET /api/manufacturers[?simple=true]
func (h *CatalogHandler) GetManufacturers(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("simple") == "true" {
		list, err := h.catalog.ListManufacturerSummaries(ctx)
		if err != nil {
			respondError(c, err, "fetch manufacturers")
			return
		}
		utils.Success(c, http.StatusOK, list)
		return
	}

	list, err := h.catalog.ListManufacturers(ctx)
	if err != nil {
		respondError(c, err, "fetch manufacturers")
		return
	}
	utils.List(c, list, len(list), nil)
}

// GetCameraManufacturers lists active camera brands.
// GET /api/camera-manufacturers[?simple=true]
func (h *CatalogHandler) GetCameraManufacturers(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("simple") == "true" {
		list, err := h.catalog.ListCameraManufacturerSummaries(ctx)
		if err != nil {
			respondError(c, err, "fetch camera manufacturers")
			return
		}
		utils.Success(c, http.StatusOK, list)
		return
	}

	list, err := h.catalog.ListCameraManufacturers(ctx)
	if err != nil {
		respondError(c, err, "fetch camera manufacturers")
		return
	}
	utils.List(c, list, len(list), nil)
}

// GetHousings lists active housings.
// GET /api/housings[?manufacturer=&category=&inStock=&maxPrice=]
func (h *CatalogHandler) GetHousings(c *gin.Context) {
	echo := housingFilters{
		Manufacturer: queryPtr(c, "manufacturer"),
		Category:     queryPtr(c, "category"),
		InStock:      queryPtr(c, "inStock"),
		MaxPrice:     queryPtr(c, "maxPrice"),
	}

	f := service.ListFilter{
		ManufacturerSlug: c.Query("manufacturer"),
		Category:         c.Query("category"),
		InStock:          c.Query("inStock") == "true",
	}
	if echo.MaxPrice != nil {
		maxPrice, err := strconv.ParseFloat(*echo.MaxPrice, 64)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "maxPrice must be a number")
			return
		}
		f.MaxPrice = &maxPrice
	}

	list, err := h.catalog.ListHousings(c.Request.Context(), f)
	if err != nil {
		respondError(c, err, "fetch housings")
		return
	}
	utils.List(c, list, len(list), echo)
}
