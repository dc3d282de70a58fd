// Package mocks holds testify mocks of the service repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/repository"
)

// MockHousingManufacturerRepository is a mock type for the HousingManufacturerRepository type.
type MockHousingManufacturerRepository struct {
	mock.Mock
}

// NewMockHousingManufacturerRepository creates a new instance of MockHousingManufacturerRepository. It registers a cleanup
// function to assert the mocks expectations.
func NewMockHousingManufacturerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHousingManufacturerRepository {
	m := &MockHousingManufacturerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// List provides a mock function for the HousingManufacturerRepository type.
func (_m *MockHousingManufacturerRepository) List(ctx context.Context) ([]models.HousingManufacturer, error) {
	ret := _m.Called(ctx)

	var r0 []models.HousingManufacturer
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.HousingManufacturer)
	}
	return r0, ret.Error(1)
}

// ListSimple provides a mock function for the HousingManufacturerRepository type.
func (_m *MockHousingManufacturerRepository) ListSimple(ctx context.Context) ([]models.ManufacturerSummary, error) {
	ret := _m.Called(ctx)

	var r0 []models.ManufacturerSummary
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.ManufacturerSummary)
	}
	return r0, ret.Error(1)
}

// GetByID provides a mock function for the HousingManufacturerRepository type.
func (_m *MockHousingManufacturerRepository) GetByID(ctx context.Context, id string) (*models.HousingManufacturer, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.HousingManufacturer
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.HousingManufacturer)
	}
	return r0, ret.Error(1)
}

// GetBySlug provides a mock function for the HousingManufacturerRepository type.
func (_m *MockHousingManufacturerRepository) GetBySlug(ctx context.Context, slug string) (*models.HousingManufacturer, error) {
	ret := _m.Called(ctx, slug)

	var r0 *models.HousingManufacturer
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.HousingManufacturer)
	}
	return r0, ret.Error(1)
}

// SlugExists provides a mock function for the HousingManufacturerRepository type.
func (_m *MockHousingManufacturerRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	ret := _m.Called(ctx, slug, excludeID)
	return ret.Bool(0), ret.Error(1)
}

// Create provides a mock function for the HousingManufacturerRepository type.
func (_m *MockHousingManufacturerRepository) Create(ctx context.Context, m *models.HousingManufacturer) error {
	ret := _m.Called(ctx, m)
	return ret.Error(0)
}

// Update provides a mock function for the HousingManufacturerRepository type.
func (_m *MockHousingManufacturerRepository) Update(ctx context.Context, m *models.HousingManufacturer) (bool, error) {
	ret := _m.Called(ctx, m)
	return ret.Bool(0), ret.Error(1)
}

// Delete provides a mock function for the HousingManufacturerRepository type.
func (_m *MockHousingManufacturerRepository) Delete(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

// CountHousings provides a mock function for the HousingManufacturerRepository type.
func (_m *MockHousingManufacturerRepository) CountHousings(ctx context.Context, id string) (int, error) {
	ret := _m.Called(ctx, id)
	return ret.Int(0), ret.Error(1)
}

// MockCameraManufacturerRepository is a mock type for the CameraManufacturerRepository type.
type MockCameraManufacturerRepository struct {
	mock.Mock
}

// NewMockCameraManufacturerRepository creates a new instance of MockCameraManufacturerRepository. It registers a cleanup
// function to assert the mocks expectations.
func NewMockCameraManufacturerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCameraManufacturerRepository {
	m := &MockCameraManufacturerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// List provides a mock function for the CameraManufacturerRepository type.
func (_m *MockCameraManufacturerRepository) List(ctx context.Context, activeOnly bool) ([]models.CameraManufacturer, error) {
	ret := _m.Called(ctx, activeOnly)

	var r0 []models.CameraManufacturer
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.CameraManufacturer)
	}
	return r0, ret.Error(1)
}

// ListSimple provides a mock function for the CameraManufacturerRepository type.
func (_m *MockCameraManufacturerRepository) ListSimple(ctx context.Context, activeOnly bool) ([]models.ManufacturerSummary, error) {
	ret := _m.Called(ctx, activeOnly)

	var r0 []models.ManufacturerSummary
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.ManufacturerSummary)
	}
	return r0, ret.Error(1)
}

// GetByID provides a mock function for the CameraManufacturerRepository type.
func (_m *MockCameraManufacturerRepository) GetByID(ctx context.Context, id string) (*models.CameraManufacturer, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.CameraManufacturer
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.CameraManufacturer)
	}
	return r0, ret.Error(1)
}

// GetBySlug provides a mock function for the CameraManufacturerRepository type.
func (_m *MockCameraManufacturerRepository) GetBySlug(ctx context.Context, slug string) (*models.CameraManufacturer, error) {
	ret := _m.Called(ctx, slug)

	var r0 *models.CameraManufacturer
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.CameraManufacturer)
	}
	return r0, ret.Error(1)
}

// SlugExists provides a mock function for the CameraManufacturerRepository type.
func (_m *MockCameraManufacturerRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	ret := _m.Called(ctx, slug, excludeID)
	return ret.Bool(0), ret.Error(1)
}

// Create provides a mock function for the CameraManufacturerRepository type.
func (_m *MockCameraManufacturerRepository) Create(ctx context.Context, m *models.CameraManufacturer) error {
	ret := _m.Called(ctx, m)
	return ret.Error(0)
}

// Update provides a mock function for the CameraManufacturerRepository type.
func (_m *MockCameraManufacturerRepository) Update(ctx context.Context, m *models.CameraManufacturer) (bool, error) {
	ret := _m.Called(ctx, m)
	return ret.Bool(0), ret.Error(1)
}

// Delete provides a mock function for the CameraManufacturerRepository type.
func (_m *MockCameraManufacturerRepository) Delete(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

// CountCameras provides a mock function for the CameraManufacturerRepository type.
func (_m *MockCameraManufacturerRepository) CountCameras(ctx context.Context, id string) (int, error) {
	ret := _m.Called(ctx, id)
	return ret.Int(0), ret.Error(1)
}

// MockCameraRepository is a mock type for the CameraRepository type.
type MockCameraRepository struct {
	mock.Mock
}

// NewMockCameraRepository creates a new instance of MockCameraRepository. It registers a cleanup
// function to assert the mocks expectations.
func NewMockCameraRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCameraRepository {
	m := &MockCameraRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// List provides a mock function for the CameraRepository type.
func (_m *MockCameraRepository) List(ctx context.Context) ([]models.Camera, error) {
	ret := _m.Called(ctx)

	var r0 []models.Camera
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Camera)
	}
	return r0, ret.Error(1)
}

// ListByManufacturer provides a mock function for the CameraRepository type.
func (_m *MockCameraRepository) ListByManufacturer(ctx context.Context, manufacturerID string) ([]models.Camera, error) {
	ret := _m.Called(ctx, manufacturerID)

	var r0 []models.Camera
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Camera)
	}
	return r0, ret.Error(1)
}

// GetByID provides a mock function for the CameraRepository type.
func (_m *MockCameraRepository) GetByID(ctx context.Context, id string) (*models.Camera, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Camera
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Camera)
	}
	return r0, ret.Error(1)
}

// SlugExists provides a mock function for the CameraRepository type.
func (_m *MockCameraRepository) SlugExists(ctx context.Context, manufacturerID, slug, excludeID string) (bool, error) {
	ret := _m.Called(ctx, manufacturerID, slug, excludeID)
	return ret.Bool(0), ret.Error(1)
}

// Create provides a mock function for the CameraRepository type.
func (_m *MockCameraRepository) Create(ctx context.Context, c *models.Camera) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

// Update provides a mock function for the CameraRepository type.
func (_m *MockCameraRepository) Update(ctx context.Context, c *models.Camera) (bool, error) {
	ret := _m.Called(ctx, c)
	return ret.Bool(0), ret.Error(1)
}

// Delete provides a mock function for the CameraRepository type.
func (_m *MockCameraRepository) Delete(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

// CountHousings provides a mock function for the CameraRepository type.
func (_m *MockCameraRepository) CountHousings(ctx context.Context, id string) (int, error) {
	ret := _m.Called(ctx, id)
	return ret.Int(0), ret.Error(1)
}

// MockHousingRepository is a mock type for the HousingRepository type.
type MockHousingRepository struct {
	mock.Mock
}

// NewMockHousingRepository creates a new instance of MockHousingRepository. It registers a cleanup
// function to assert the mocks expectations.
func NewMockHousingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHousingRepository {
	m := &MockHousingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// List provides a mock function for the HousingRepository type.
func (_m *MockHousingRepository) List(ctx context.Context, f repository.HousingFilter) ([]models.HousingRow, error) {
	ret := _m.Called(ctx, f)

	var r0 []models.HousingRow
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.HousingRow)
	}
	return r0, ret.Error(1)
}

// GetByID provides a mock function for the HousingRepository type.
func (_m *MockHousingRepository) GetByID(ctx context.Context, id string) (*models.HousingRow, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.HousingRow
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.HousingRow)
	}
	return r0, ret.Error(1)
}

// GetBySlugs provides a mock function for the HousingRepository type.
func (_m *MockHousingRepository) GetBySlugs(ctx context.Context, manufacturerSlug, housingSlug string) (*models.HousingRow, error) {
	ret := _m.Called(ctx, manufacturerSlug, housingSlug)

	var r0 *models.HousingRow
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.HousingRow)
	}
	return r0, ret.Error(1)
}

// SlugExists provides a mock function for the HousingRepository type.
func (_m *MockHousingRepository) SlugExists(ctx context.Context, manufacturerID, slug, excludeID string) (bool, error) {
	ret := _m.Called(ctx, manufacturerID, slug, excludeID)
	return ret.Bool(0), ret.Error(1)
}

// Create provides a mock function for the HousingRepository type.
func (_m *MockHousingRepository) Create(ctx context.Context, h *models.Housing, compat []models.Compatibility) error {
	ret := _m.Called(ctx, h, compat)
	return ret.Error(0)
}

// Update provides a mock function for the HousingRepository type.
func (_m *MockHousingRepository) Update(ctx context.Context, h *models.Housing, compat []models.Compatibility) (bool, error) {
	ret := _m.Called(ctx, h, compat)
	return ret.Bool(0), ret.Error(1)
}

// Delete provides a mock function for the HousingRepository type.
func (_m *MockHousingRepository) Delete(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

// ListCompatibility provides a mock function for the HousingRepository type.
func (_m *MockHousingRepository) ListCompatibility(ctx context.Context, housingIDs []string) ([]models.Compatibility, error) {
	ret := _m.Called(ctx, housingIDs)

	var r0 []models.Compatibility
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Compatibility)
	}
	return r0, ret.Error(1)
}

// MockReviewRepository is a mock type for the ReviewRepository type.
type MockReviewRepository struct {
	mock.Mock
}

// NewMockReviewRepository creates a new instance of MockReviewRepository. It registers a cleanup
// function to assert the mocks expectations.
func NewMockReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// RatingsByHousing provides a mock function for the ReviewRepository type.
func (_m *MockReviewRepository) RatingsByHousing(ctx context.Context, housingIDs []string) (map[string][]int, error) {
	ret := _m.Called(ctx, housingIDs)

	var r0 map[string][]int
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string][]int)
	}
	return r0, ret.Error(1)
}

// MockCatalogCache is a mock type for the CatalogCache type.
type MockCatalogCache struct {
	mock.Mock
}

// NewMockCatalogCache creates a new instance of MockCatalogCache. It registers a cleanup
// function to assert the mocks expectations.
func NewMockCatalogCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogCache {
	m := &MockCatalogCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Get provides a mock function for the CatalogCache type.
func (_m *MockCatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	ret := _m.Called(ctx, key, dest)
	return ret.Bool(0), ret.Error(1)
}

// Set provides a mock function for the CatalogCache type.
func (_m *MockCatalogCache) Set(ctx context.Context, key string, value any) error {
	ret := _m.Called(ctx, key, value)
	return ret.Error(0)
}

// Invalidate provides a mock function for the CatalogCache type.
func (_m *MockCatalogCache) Invalidate(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
