package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/route"
	"github.com/underwaterhousings/catalog_api/internal/service"
)

// Handlers groups every HTTP handler of the service.
type Handlers struct {
	Health               *HealthHandler
	Catalog              *CatalogHandler
	Pages                *PageHandler
	Assets               *AssetHandler
	HousingManufacturers *AdminHandler[service.HousingManufacturerRequest, models.HousingManufacturer]
	CameraManufacturers  *AdminHandler[service.CameraManufacturerRequest, models.CameraManufacturer]
	Cameras              *AdminHandler[service.CameraRequest, models.Camera]
	Housings             *AdminHandler[service.HousingRequest, models.HousingView]
}

// RegisterRoutes mounts every route on router.
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/health", h.Health.GetHealth)

	api := router.Group("/api")
	{
		api.GET("/manufacturers", h.Catalog.GetManufacturers)
		api.GET("/camera-manufacturers", h.Catalog.GetCameraManufacturers)
		api.GET("/housings", h.Catalog.GetHousings)
	}

	admin := api.Group("/admin")
	{
		h.HousingManufacturers.Register(admin, "/housing-manufacturers")
		h.CameraManufacturers.Register(admin, "/camera-manufacturers")
		h.Cameras.Register(admin, "/cameras")
		h.Housings.Register(admin, "/housings")
	}

	router.GET("/", h.Pages.Home)
	router.GET("/about", h.Pages.About)
	router.GET("/admin", h.Pages.Admin)
	router.GET("/cameras", h.Pages.Cameras)
	router.GET("/cameras/:manufacturer", h.Pages.CameraManufacturer)
	router.GET(route.HousingIndex, h.Pages.Browse)
	router.GET(route.FallbackImage, h.Assets.Fallback)
	router.GET("/housings/:manufacturer", h.Pages.Manufacturer)
	router.GET("/housings/:manufacturer/:housing", h.Pages.Housing)
	router.GET("/housings/:manufacturer/:housing/:image", h.Assets.Image)

	router.NoRoute(h.Pages.Legacy)
}
