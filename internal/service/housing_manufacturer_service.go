package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

// HousingManufacturerRequest is the editable field set of a housing manufacturer.
type HousingManufacturerRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// HousingManufacturerService edits housing manufacturers.
type HousingManufacturerService struct {
	repo  HousingManufacturerRepository
	cache CatalogCache
}

// NewHousingManufacturerService constructs a HousingManufacturerService.
// cache may be nil.
func NewHousingManufacturerService(repo HousingManufacturerRepository, cache CatalogCache) *HousingManufacturerService {
	return &HousingManufacturerService{repo: repo, cache: cache}
}

// List returns all manufacturers ordered by name.
func (s *HousingManufacturerService) List(ctx context.Context) ([]models.HousingManufacturer, error) {
	return s.repo.List(ctx)
}

func (s *HousingManufacturerService) prepare(ctx context.Context, req HousingManufacturerRequest, excludeID string) (string, string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", "", utils.NewValidationError("Name is required")
	}

	slug := utils.Slugify(name)
	exists, err := s.repo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return "", "", fmt.Errorf("check manufacturer slug: %w", err)
	}
	if exists {
		return "", "", utils.NewConflictError("A manufacturer with this name already exists")
	}
	return name, slug, nil
}

// Create validates req, derives the slug and stores a new manufacturer.
func (s *HousingManufacturerService) Create(ctx context.Context, req HousingManufacturerRequest) (*models.HousingManufacturer, error) {
	name, slug, err := s.prepare(ctx, req, "")
	if err != nil {
		return nil, err
	}

	ts := now()
	m := &models.HousingManufacturer{
		ID:          utils.NewID(),
		Name:        name,
		Slug:        slug,
		Description: optionalText(req.Description),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create manufacturer: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return m, nil
}

// Update replaces the editable fields of manufacturer id.
func (s *HousingManufacturerService) Update(ctx context.Context, id string, req HousingManufacturerRequest) (*models.HousingManufacturer, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get manufacturer: %w", err)
	}
	if m == nil {
		return nil, utils.NewNotFoundError("Housing manufacturer not found")
	}

	name, slug, err := s.prepare(ctx, req, id)
	if err != nil {
		return nil, err
	}

	m.Name = name
	m.Slug = slug
	m.Description = optionalText(req.Description)
	m.UpdatedAt = now()

	ok, err := s.repo.Update(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("update manufacturer: %w", err)
	}
	if !ok {
		return nil, utils.NewNotFoundError("Housing manufacturer not found")
	}

	invalidateCatalog(ctx, s.cache)
	return m, nil
}

// Delete removes manufacturer id unless housings still belong to it.
func (s *HousingManufacturerService) Delete(ctx context.Context, id string) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get manufacturer: %w", err)
	}
	if m == nil {
		return utils.NewNotFoundError("Housing manufacturer not found")
	}

	n, err := s.repo.CountHousings(ctx, id)
	if err != nil {
		return fmt.Errorf("count housings: %w", err)
	}
	if n > 0 {
		return utils.NewConflictError("Cannot delete manufacturer. There are %d housings associated with this manufacturer.", n)
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete manufacturer: %w", err)
	}
	if !ok {
		return utils.NewNotFoundError("Housing manufacturer not found")
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}
