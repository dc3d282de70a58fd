package service

import (
	"context"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/repository"
)

// HousingManufacturerRepository is the subset of repository.HousingManufacturerRepository the services require.
type HousingManufacturerRepository interface {
	List(ctx context.Context) ([]models.HousingManufacturer, error)
	ListSimple(ctx context.Context) ([]models.ManufacturerSummary, error)
	GetByID(ctx context.Context, id string) (*models.HousingManufacturer, error)
	GetBySlug(ctx context.Context, slug string) (*models.HousingManufacturer, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, m *models.HousingManufacturer) error
	Update(ctx context.Context, m *models.HousingManufacturer) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountHousings(ctx context.Context, id string) (int, error)
}

// CameraManufacturerRepository is the subset of repository.CameraManufacturerRepository the services require.
type CameraManufacturerRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.CameraManufacturer, error)
	ListSimple(ctx context.Context, activeOnly bool) ([]models.ManufacturerSummary, error)
	GetByID(ctx context.Context, id string) (*models.CameraManufacturer, error)
	GetBySlug(ctx context.Context, slug string) (*models.CameraManufacturer, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, m *models.CameraManufacturer) error
	Update(ctx context.Context, m *models.CameraManufacturer) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountCameras(ctx context.Context, id string) (int, error)
}

// CameraRepository is the subset of repository.CameraRepository the services require.
type CameraRepository interface {
	List(ctx context.Context) ([]models.Camera, error)
	ListByManufacturer(ctx context.Context, manufacturerID string) ([]models.Camera, error)
	GetByID(ctx context.Context, id string) (*models.Camera, error)
	SlugExists(ctx context.Context, manufacturerID, slug, excludeID string) (bool, error)
	Create(ctx context.Context, c *models.Camera) error
	Update(ctx context.Context, c *models.Camera) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountHousings(ctx context.Context, id string) (int, error)
}

// HousingRepository is the subset of repository.HousingRepository the services require.
type HousingRepository interface {
	List(ctx context.Context, f repository.HousingFilter) ([]models.HousingRow, error)
	GetByID(ctx context.Context, id string) (*models.HousingRow, error)
	GetBySlugs(ctx context.Context, manufacturerSlug, housingSlug string) (*models.HousingRow, error)
	SlugExists(ctx context.Context, manufacturerID, slug, excludeID string) (bool, error)
	Create(ctx context.Context, h *models.Housing, compat []models.Compatibility) error
	Update(ctx context.Context, h *models.Housing, compat []models.Compatibility) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListCompatibility(ctx context.Context, housingIDs []string) ([]models.Compatibility, error)
}

// ReviewRepository is the subset of repository.ReviewRepository the services require.
type ReviewRepository interface {
	RatingsByHousing(ctx context.Context, housingIDs []string) (map[string][]int, error)
}

// CatalogCache stores serialized catalog listings. Get reports false on a miss.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context) error
}
