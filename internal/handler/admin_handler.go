package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/service"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

// recordEditor is the shape shared by the admin services.
type recordEditor[Req, Rec any] interface {
	List(ctx context.Context) ([]Rec, error)
	Create(ctx context.Context, req Req) (*Rec, error)
	Update(ctx context.Context, id string, req Req) (*Rec, error)
	Delete(ctx context.Context, id string) error
}

// AdminHandler exposes one admin service as GET/POST/PUT/DELETE on a single
// path, with the record id passed as ?id=.
type AdminHandler[Req, Rec any] struct {
	svc recordEditor[Req, Rec]

	// noun is used in failure messages, e.g. "housing manufacturer".
	noun string
	// label names the record in id and delete messages, e.g. "Manufacturer".
	label string
}

// NewHousingManufacturerAdmin serves /api/admin/housing-manufacturers.
func NewHousingManufacturerAdmin(svc *service.HousingManufacturerService) *AdminHandler[service.HousingManufacturerRequest, models.HousingManufacturer] {
	return &AdminHandler[service.HousingManufacturerRequest, models.HousingManufacturer]{
		svc: svc, noun: "housing manufacturer", label: "Manufacturer",
	}
}

// NewCameraManufacturerAdmin serves /api/admin/camera-manufacturers.
func NewCameraManufacturerAdmin(svc *service.CameraManufacturerService) *AdminHandler[service.CameraManufacturerRequest, models.CameraManufacturer] {
	return &AdminHandler[service.CameraManufacturerRequest, models.CameraManufacturer]{
		svc: svc, noun: "camera manufacturer", label: "Manufacturer",
	}
}

// NewCameraAdmin serves /api/admin/cameras.
func NewCameraAdmin(svc *service.CameraService) *AdminHandler[service.CameraRequest, models.Camera] {
	return &AdminHandler[service.CameraRequest, models.Camera]{
		svc: svc, noun: "camera", label: "Camera",
	}
}

// NewHousingAdmin serves /api/admin/housings.
func NewHousingAdmin(svc *service.HousingService) *AdminHandler[service.HousingRequest, models.HousingView] {
	return &AdminHandler[service.HousingRequest, models.HousingView]{
		svc: svc, noun: "housing", label: "Housing",
	}
}

// Register mounts the handler on path.
func (h *AdminHandler[Req, Rec]) Register(r gin.IRoutes, path string) {
	r.GET(path, h.List)
	r.POST(path, h.Create)
	r.PUT(path, h.Update)
	r.DELETE(path, h.Delete)
}

func (h *AdminHandler[Req, Rec]) requireID(c *gin.Context) (string, bool) {
	id := c.Query("id")
	if id == "" {
		utils.Error(c, http.StatusBadRequest, h.label+" ID is required")
		return "", false
	}
	return id, true
}

// List returns every record, ordered for the editor.
func (h *AdminHandler[Req, Rec]) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch "+h.noun+"s")
		return
	}
	utils.Success(c, http.StatusOK, list)
}

// Create inserts a record and returns it.
func (h *AdminHandler[Req, Rec]) Create(c *gin.Context) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create "+h.noun)
		return
	}
	utils.Success(c, http.StatusCreated, rec)
}

// Update replaces the editable fields of the record named by ?id=.
func (h *AdminHandler[Req, Rec]) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}

	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "update "+h.noun)
		return
	}
	utils.Success(c, http.StatusOK, rec)
}

// Delete removes the record named by ?id=.
func (h *AdminHandler[Req, Rec]) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete "+h.noun)
		return
	}
	utils.Message(c, http.StatusOK, h.label+" deleted successfully")
}
