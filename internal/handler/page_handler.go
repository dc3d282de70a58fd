package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/underwaterhousings/catalog_api/internal/filter"
	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/route"
	"github.com/underwaterhousings/catalog_api/internal/service"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

// AboutSection is one block of the about page.
type AboutSection struct {
	Heading string   `json:"heading"`
	Body    string   `json:"body,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// AboutPage is the static about page.
type AboutPage struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Sections []AboutSection `json:"sections"`
}

var aboutPage = AboutPage{
	Title:    "About UW Housings",
	Subtitle: "Your comprehensive guide to underwater camera housings",
	Sections: []AboutSection{
		{
			Heading: "Our Mission",
			Body: "UW Housings is dedicated to helping underwater photographers and videographers find the perfect camera housing for their needs. " +
				"We provide comprehensive information about housings from leading manufacturers, making it easy to compare features, prices, and specifications.",
		},
		{
			Heading: "How to Use This Site",
			Items: []string{
				"Use the Housings menu to browse by manufacturer",
				"Filter housings by camera compatibility, depth rating, price, and material",
				"Open any housing to view detailed specifications and pricing",
			},
		},
		{
			Heading: "Contact",
			Body:    "Have questions or suggestions? This catalog is continuously updated to provide accurate information about underwater camera housings.",
		},
	},
}

// AdminDashboard holds every editable record for the admin page.
type AdminDashboard struct {
	HousingManufacturers []models.HousingManufacturer `json:"housingManufacturers"`
	CameraManufacturers  []models.CameraManufacturer  `json:"cameraManufacturers"`
	Cameras              []models.Camera              `json:"cameras"`
	Housings             []models.HousingView         `json:"housings"`
}

// PageHandler serves the JSON data behind each browsing page.
type PageHandler struct {
	catalog       *service.CatalogService
	manufacturers *service.HousingManufacturerService
	brands        *service.CameraManufacturerService
	cameras       *service.CameraService
	housings      *service.HousingService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(
	catalog *service.CatalogService,
	manufacturers *service.HousingManufacturerService,
	brands *service.CameraManufacturerService,
	cameras *service.CameraService,
	housings *service.HousingService,
) *PageHandler {
	return &PageHandler{
		catalog:       catalog,
		manufacturers: manufacturers,
		brands:        brands,
		cameras:       cameras,
		housings:      housings,
	}
}

// Home serves the landing page. It never fails: a store outage yields the
// built-in manufacturer list.
// GET /
func (h *PageHandler) Home(c *gin.Context) {
	utils.Success(c, http.StatusOK, h.catalog.Home(c.Request.Context()))
}

// About serves the static about page.
// GET /about
func (h *PageHandler) About(c *gin.Context) {
	utils.Success(c, http.StatusOK, aboutPage)
}

// Admin loads the four record lists of the admin dashboard concurrently.
// GET /admin
func (h *PageHandler) Admin(c *gin.Context) {
	var d AdminDashboard
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		d.HousingManufacturers, err = h.manufacturers.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.CameraManufacturers, err = h.brands.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Cameras, err = h.cameras.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Housings, err = h.housings.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(c, err, "fetch admin data")
		return
	}
	utils.Success(c, http.StatusOK, d)
}

// Cameras lists active camera brands with their cameras.
// GET /cameras
func (h *PageHandler) Cameras(c *gin.Context) {
	page, err := h.catalog.CameraIndex(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch cameras")
		return
	}
	utils.Success(c, http.StatusOK, page)
}

// CameraManufacturer lists a brand's cameras with the housings that fit them.
// GET /cameras/:manufacturer
func (h *PageHandler) CameraManufacturer(c *gin.Context) {
	page, err := h.catalog.CameraManufacturerPage(c.Request.Context(), c.Param("manufacturer"))
	if err != nil {
		respondError(c, err, "fetch camera manufacturer")
		return
	}
	utils.Success(c, http.StatusOK, page)
}

// Browse filters the whole catalog by the query string.
// GET /housings?camera=&maxDepth=&priceMin=&priceMax=&material=&manufacturer=
func (h *PageHandler) Browse(c *gin.Context) {
	page, err := h.catalog.Browse(c.Request.Context(), filter.FromQuery(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, "fetch housings")
		return
	}
	utils.Success(c, http.StatusOK, page)
}

// Manufacturer lists one manufacturer's housings.
// GET /housings/:manufacturer
func (h *PageHandler) Manufacturer(c *gin.Context) {
	page, err := h.catalog.ManufacturerPage(c.Request.Context(), c.Param("manufacturer"))
	if err != nil {
		respondError(c, err, "fetch manufacturer")
		return
	}
	utils.Success(c, http.StatusOK, page)
}

// Housing serves a housing detail page.
// GET /housings/:manufacturer/:housing
func (h *PageHandler) Housing(c *gin.Context) {
	page, err := h.catalog.HousingDetail(c.Request.Context(), c.Param("manufacturer"), c.Param("housing"))
	if err != nil {
		respondError(c, err, "fetch housing")
		return
	}
	utils.Success(c, http.StatusOK, page)
}

// Legacy permanently redirects the old top-level /<m> and /<m>/<h> paths to
// their canonical /housings form. Anything else is a 404.
func (h *PageHandler) Legacy(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		utils.Error(c, http.StatusNotFound, "Not found")
		return
	}

	manufacturer, housing, ok := route.ParseLegacy(c.Request.URL.Path)
	if !ok {
		utils.Error(c, http.StatusNotFound, "Not found")
		return
	}

	target, err := h.catalog.LegacyPath(c.Request.Context(), manufacturer, housing)
	if err != nil {
		respondError(c, err, "resolve path")
		return
	}
	c.Redirect(http.StatusMovedPermanently, target)
}
