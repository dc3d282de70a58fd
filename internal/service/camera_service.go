package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

// CameraRequest is the editable field set of a camera.
type CameraRequest struct {
	Name                 string `json:"name"`
	CameraManufacturerID string `json:"cameraManufacturerId"`
}

// CameraService edits cameras. Camera slugs are derived from the brand name
// and the camera name, e.g. "Nikon" + "Z8" gives "nikon-z8".
type CameraService struct {
	cameras CameraRepository
	brands  CameraManufacturerRepository
	cache   CatalogCache
}

// NewCameraService constructs a CameraService.
func NewCameraService(cameras CameraRepository, brands CameraManufacturerRepository, cache CatalogCache) *CameraService {
	return &CameraService{cameras: cameras, brands: brands, cache: cache}
}

// List returns all cameras with their brand, ordered by name.
func (s *CameraService) List(ctx context.Context) ([]models.Camera, error) {
	return s.cameras.List(ctx)
}

func (s *CameraService) prepare(ctx context.Context, req CameraRequest, excludeID string) (*models.Camera, error) {
	name := strings.TrimSpace(req.Name)
	brandID := strings.TrimSpace(req.CameraManufacturerID)
	if name == "" || brandID == "" {
		return nil, utils.NewValidationError("Name and camera manufacturer are required")
	}

	brand, err := s.brands.GetByID(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	if brand == nil {
		return nil, utils.NewNotFoundError("Camera manufacturer not found")
	}

	slug := utils.Slugify(brand.Name + " " + name)
	exists, err := s.cameras.SlugExists(ctx, brand.ID, slug, excludeID)
	if err != nil {
		return nil, fmt.Errorf("check camera slug: %w", err)
	}
	if exists {
		return nil, utils.NewConflictError("A camera with this name already exists for this manufacturer")
	}

	summary := brand.Summary()
	return &models.Camera{
		Name:                 name,
		Slug:                 slug,
		CameraManufacturerID: brand.ID,
		BrandName:            brand.Name,
		BrandSlug:            brand.Slug,
		Brand:                &summary,
	}, nil
}

// Create validates req, derives the slug and stores a new camera.
func (s *CameraService) Create(ctx context.Context, req CameraRequest) (*models.Camera, error) {
	c, err := s.prepare(ctx, req, "")
	if err != nil {
		return nil, err
	}

	c.ID = utils.NewID()
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt
	if err := s.cameras.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create camera: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return c, nil
}

// Update replaces the editable fields of camera id. The slug is derived the
// same way as on create.
func (s *CameraService) Update(ctx context.Context, id string, req CameraRequest) (*models.Camera, error) {
	existing, err := s.cameras.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get camera: %w", err)
	}
	if existing == nil {
		return nil, utils.NewNotFoundError("Camera not found")
	}

	c, err := s.prepare(ctx, req, id)
	if err != nil {
		return nil, err
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = now()
	ok, err := s.cameras.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update camera: %w", err)
	}
	if !ok {
		return nil, utils.NewNotFoundError("Camera not found")
	}

	invalidateCatalog(ctx, s.cache)
	return c, nil
}

// Delete removes camera id unless a housing references it, either as its
// primary camera or through a compatibility entry.
func (s *CameraService) Delete(ctx context.Context, id string) error {
	c, err := s.cameras.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get camera: %w", err)
	}
	if c == nil {
		return utils.NewNotFoundError("Camera not found")
	}

	n, err := s.cameras.CountHousings(ctx, id)
	if err != nil {
		return fmt.Errorf("count housings: %w", err)
	}
	if n > 0 {
		return utils.NewConflictError("Cannot delete camera. There are %d housings associated with this camera.", n)
	}

	ok, err := s.cameras.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete camera: %w", err)
	}
	if !ok {
		return utils.NewNotFoundError("Camera not found")
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}
