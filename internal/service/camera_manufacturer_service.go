package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

// CameraManufacturerRequest is the editable field set of a camera brand.
// IsActive defaults to true on create and is left unchanged on update when omitted.
type CameraManufacturerRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"isActive"`
}

// CameraManufacturerService edits camera brands.
type CameraManufacturerService struct {
	repo  CameraManufacturerRepository
	cache CatalogCache
}

// NewCameraManufacturerService constructs a CameraManufacturerService.
func NewCameraManufacturerService(repo CameraManufacturerRepository, cache CatalogCache) *CameraManufacturerService {
	return &CameraManufacturerService{repo: repo, cache: cache}
}

// List returns every brand, active or not, ordered by name.
func (s *CameraManufacturerService) List(ctx context.Context) ([]models.CameraManufacturer, error) {
	return s.repo.List(ctx, false)
}

func (s *CameraManufacturerService) prepare(ctx context.Context, req CameraManufacturerRequest, excludeID string) (string, string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", "", utils.NewValidationError("Name is required")
	}

	slug := utils.Slugify(name)
	exists, err := s.repo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return "", "", fmt.Errorf("check brand slug: %w", err)
	}
	if exists {
		return "", "", utils.NewConflictError("A manufacturer with this name already exists")
	}
	return name, slug, nil
}

// Create validates req, derives the slug and stores a new brand.
func (s *CameraManufacturerService) Create(ctx context.Context, req CameraManufacturerRequest) (*models.CameraManufacturer, error) {
	name, slug, err := s.prepare(ctx, req, "")
	if err != nil {
		return nil, err
	}

	ts := now()
	m := &models.CameraManufacturer{
		ID:        utils.NewID(),
		Name:      name,
		Slug:      slug,
		IsActive:  boolOr(req.IsActive, true),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return m, nil
}

// Update replaces the editable fields of brand id.
func (s *CameraManufacturerService) Update(ctx context.Context, id string, req CameraManufacturerRequest) (*models.CameraManufacturer, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	if m == nil {
		return nil, utils.NewNotFoundError("Camera manufacturer not found")
	}

	name, slug, err := s.prepare(ctx, req, id)
	if err != nil {
		return nil, err
	}

	m.Name = name
	m.Slug = slug
	m.IsActive = boolOr(req.IsActive, m.IsActive)
	m.UpdatedAt = now()

	ok, err := s.repo.Update(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	if !ok {
		return nil, utils.NewNotFoundError("Camera manufacturer not found")
	}

	invalidateCatalog(ctx, s.cache)
	return m, nil
}

// Delete removes brand id unless cameras still belong to it.
func (s *CameraManufacturerService) Delete(ctx context.Context, id string) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get brand: %w", err)
	}
	if m == nil {
		return utils.NewNotFoundError("Camera manufacturer not found")
	}

	n, err := s.repo.CountCameras(ctx, id)
	if err != nil {
		return fmt.Errorf("count cameras: %w", err)
	}
	if n > 0 {
		return utils.NewConflictError("Cannot delete manufacturer. There are %d cameras associated with this manufacturer.", n)
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if !ok {
		return utils.NewNotFoundError("Camera manufacturer not found")
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}
