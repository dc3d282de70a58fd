package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/service/mocks"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

func TestCameraManufacturerServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("defaults to active", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCameraManufacturerRepository(t)
		repo.On("SlugExists", mock.Anything, "om-system", "").Return(false, nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		res, err := NewCameraManufacturerService(repo, nil).Create(context.Background(), CameraManufacturerRequest{Name: "OM System"})
		require.NoError(t, err)
		assert.True(t, res.IsActive)
		assert.Equal(t, "om-system", res.Slug)
	})

	t.Run("honours explicit inactive", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCameraManufacturerRepository(t)
		repo.On("SlugExists", mock.Anything, "kodak", "").Return(false, nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		res, err := NewCameraManufacturerService(repo, nil).Create(context.Background(), CameraManufacturerRequest{Name: "Kodak", IsActive: ptr(false)})
		require.NoError(t, err)
		assert.False(t, res.IsActive)
	})
}

func TestCameraManufacturerServiceDelete(t *testing.T) {
	t.Parallel()

	id := gofakeit.UUID()
	repo := mocks.NewMockCameraManufacturerRepository(t)
	repo.On("GetByID", mock.Anything, id).Return(&models.CameraManufacturer{ID: id, Name: "Sony"}, nil).Once()
	repo.On("CountCameras", mock.Anything, id).Return(2, nil).Once()

	err := NewCameraManufacturerService(repo, nil).Delete(context.Background(), id)
	require.ErrorIs(t, err, utils.ErrConflict)
	assert.EqualError(t, err, "Cannot delete manufacturer. There are 2 cameras associated with this manufacturer.")
}

func TestCameraServiceCreate(t *testing.T) {
	t.Parallel()

	brandID := gofakeit.UUID()
	nikon := &models.CameraManufacturer{ID: brandID, Name: "Nikon", Slug: "nikon", IsActive: true}

	tests := []struct {
		name    string
		req     CameraRequest
		setup   func(cameras *mocks.MockCameraRepository, brands *mocks.MockCameraManufacturerRepository)
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing manufacturer id",
			req:     CameraRequest{Name: "Z8"},
			wantErr: utils.ErrValidation,
			wantMsg: "Name and camera manufacturer are required",
		},
		{
			name: "unknown manufacturer",
			req:  CameraRequest{Name: "Z8", CameraManufacturerID: brandID},
			setup: func(_ *mocks.MockCameraRepository, brands *mocks.MockCameraManufacturerRepository) {
				brands.On("GetByID", mock.Anything, brandID).Return(nil, nil).Once()
			},
			wantErr: utils.ErrNotFound,
			wantMsg: "Camera manufacturer not found",
		},
		{
			name: "duplicate within brand",
			req:  CameraRequest{Name: "Z8", CameraManufacturerID: brandID},
			setup: func(cameras *mocks.MockCameraRepository, brands *mocks.MockCameraManufacturerRepository) {
				brands.On("GetByID", mock.Anything, brandID).Return(nikon, nil).Once()
				cameras.On("SlugExists", mock.Anything, brandID, "nikon-z8", "").Return(true, nil).Once()
			},
			wantErr: utils.ErrConflict,
			wantMsg: "A camera with this name already exists for this manufacturer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cameras := mocks.NewMockCameraRepository(t)
			brands := mocks.NewMockCameraManufacturerRepository(t)
			if tt.setup != nil {
				tt.setup(cameras, brands)
			}

			res, err := NewCameraService(cameras, brands, nil).Create(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.wantMsg)
			assert.Nil(t, res)
		})
	}

	t.Run("success: slug from brand and name", func(t *testing.T) {
		t.Parallel()
		cameras := mocks.NewMockCameraRepository(t)
		brands := mocks.NewMockCameraManufacturerRepository(t)
		brands.On("GetByID", mock.Anything, brandID).Return(nikon, nil).Once()
		cameras.On("SlugExists", mock.Anything, brandID, "nikon-z8", "").Return(false, nil).Once()
		cameras.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		res, err := NewCameraService(cameras, brands, nil).Create(context.Background(), CameraRequest{Name: "Z8", CameraManufacturerID: brandID})
		require.NoError(t, err)
		assert.Equal(t, "nikon-z8", res.Slug)
		assert.Equal(t, "Nikon Z8", res.FullName())
	})
}

func TestCameraServiceUpdateUsesBrandInSlug(t *testing.T) {
	t.Parallel()

	id, brandID := gofakeit.UUID(), gofakeit.UUID()
	cameras := mocks.NewMockCameraRepository(t)
	brands := mocks.NewMockCameraManufacturerRepository(t)
	cameras.On("GetByID", mock.Anything, id).Return(&models.Camera{ID: id, Name: "A7 III", CameraManufacturerID: brandID}, nil).Once()
	brands.On("GetByID", mock.Anything, brandID).Return(&models.CameraManufacturer{ID: brandID, Name: "Sony"}, nil).Once()
	cameras.On("SlugExists", mock.Anything, brandID, "sony-a7-iv", id).Return(false, nil).Once()
	cameras.On("Update", mock.Anything, mock.Anything).Return(true, nil).Once()

	res, err := NewCameraService(cameras, brands, nil).Update(context.Background(), id, CameraRequest{Name: "A7 IV", CameraManufacturerID: brandID})
	require.NoError(t, err)
	assert.Equal(t, "sony-a7-iv", res.Slug)
	assert.Equal(t, id, res.ID)
}

func TestCameraServiceDeleteCountsCompatibility(t *testing.T) {
	t.Parallel()

	id := gofakeit.UUID()
	cameras := mocks.NewMockCameraRepository(t)
	cameras.On("GetByID", mock.Anything, id).Return(&models.Camera{ID: id, Name: "Z8"}, nil).Once()
	cameras.On("CountHousings", mock.Anything, id).Return(4, nil).Once()

	err := NewCameraService(cameras, mocks.NewMockCameraManufacturerRepository(t), nil).Delete(context.Background(), id)
	require.ErrorIs(t, err, utils.ErrConflict)
	assert.EqualError(t, err, "Cannot delete camera. There are 4 housings associated with this camera.")
	cameras.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
