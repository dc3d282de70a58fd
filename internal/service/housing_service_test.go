package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/service/mocks"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

type housingDeps struct {
	housings      *mocks.MockHousingRepository
	manufacturers *mocks.MockHousingManufacturerRepository
	cameras       *mocks.MockCameraRepository
	reviews       *mocks.MockReviewRepository
	cache         *mocks.MockCatalogCache
}

func newHousingDeps(t *testing.T) housingDeps {
	return housingDeps{
		housings:      mocks.NewMockHousingRepository(t),
		manufacturers: mocks.NewMockHousingManufacturerRepository(t),
		cameras:       mocks.NewMockCameraRepository(t),
		reviews:       mocks.NewMockReviewRepository(t),
		cache:         mocks.NewMockCatalogCache(t),
	}
}

func (d housingDeps) service() *HousingService {
	return NewHousingService(d.housings, d.manufacturers, d.cameras, d.reviews, d.cache)
}

func decodeHousingRequest(t *testing.T, body string) HousingRequest {
	var req HousingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestHousingRequestDecoding(t *testing.T) {
	req := decodeHousingRequest(t, `{"model":"NA-Z8","name":"NA Z8","priceAmount":5500.5,"depthRating":100,"housingManufacturerId":"m1"}`)
	require.NotNil(t, req.PriceAmount)
	assert.True(t, decimal.RequireFromString("5500.5").Equal(*req.PriceAmount))
	require.NotNil(t, req.DepthRating.Value)
	assert.Equal(t, "100m/328ft", *req.DepthRating.Value)
	assert.Nil(t, req.Compatibility)

	req = decodeHousingRequest(t, `{"depthRating":"40m/130ft","priceAmount":"399.00","compatibility":[]}`)
	assert.Equal(t, "40m/130ft", *req.DepthRating.Value)
	assert.NotNil(t, req.Compatibility)
	assert.Empty(t, req.Compatibility)
}

func TestHousingServiceCreateValidation(t *testing.T) {
	t.Parallel()

	manufacturerID := gofakeit.UUID()
	cameraID := gofakeit.UUID()
	nauticam := &models.HousingManufacturer{ID: manufacturerID, Name: "Nauticam", Slug: "nauticam"}

	tests := []struct {
		name    string
		req     HousingRequest
		setup   func(d housingDeps)
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing model",
			req:     HousingRequest{Name: "NA Z8", HousingManufacturerID: manufacturerID},
			wantErr: utils.ErrValidation,
			wantMsg: "Model, name and housing manufacturer are required",
		},
		{
			name:    "negative price",
			req:     HousingRequest{Model: "NA-Z8", Name: "NA Z8", HousingManufacturerID: manufacturerID, PriceAmount: ptr(decimal.NewFromInt(-1))},
			wantErr: utils.ErrValidation,
			wantMsg: "Price must not be negative",
		},
		{
			name:    "bad currency",
			req:     HousingRequest{Model: "NA-Z8", Name: "NA Z8", HousingManufacturerID: manufacturerID, PriceCurrency: "dollars"},
			wantErr: utils.ErrValidation,
			wantMsg: "Price currency must be a 3-letter ISO code",
		},
		{
			name: "unknown manufacturer",
			req:  HousingRequest{Model: "NA-Z8", Name: "NA Z8", HousingManufacturerID: manufacturerID},
			setup: func(d housingDeps) {
				d.manufacturers.On("GetByID", mock.Anything, manufacturerID).Return(nil, nil).Once()
			},
			wantErr: utils.ErrNotFound,
			wantMsg: "Housing manufacturer not found",
		},
		{
			name: "unknown camera",
			req:  HousingRequest{Model: "NA-Z8", Name: "NA Z8", HousingManufacturerID: manufacturerID, CameraID: &cameraID},
			setup: func(d housingDeps) {
				d.manufacturers.On("GetByID", mock.Anything, manufacturerID).Return(nauticam, nil).Once()
				d.cameras.On("GetByID", mock.Anything, cameraID).Return(nil, nil).Once()
			},
			wantErr: utils.ErrNotFound,
			wantMsg: "Camera not found",
		},
		{
			name: "duplicate slug within manufacturer",
			req:  HousingRequest{Model: "NA-Z8", Name: "NA Z8", HousingManufacturerID: manufacturerID},
			setup: func(d housingDeps) {
				d.manufacturers.On("GetByID", mock.Anything, manufacturerID).Return(nauticam, nil).Once()
				d.housings.On("SlugExists", mock.Anything, manufacturerID, "na-z8", "").Return(true, nil).Once()
			},
			wantErr: utils.ErrConflict,
			wantMsg: "A housing with this name already exists for this manufacturer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newHousingDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			res, err := d.service().Create(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.wantMsg)
			assert.Nil(t, res)
			d.housings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHousingServiceCreate(t *testing.T) {
	t.Parallel()

	d := newHousingDeps(t)
	manufacturerID, cameraID, compatID := gofakeit.UUID(), gofakeit.UUID(), gofakeit.UUID()

	d.manufacturers.On("GetByID", mock.Anything, manufacturerID).
		Return(&models.HousingManufacturer{ID: manufacturerID, Name: "Nauticam", Slug: "nauticam"}, nil).Once()
	d.cameras.On("GetByID", mock.Anything, cameraID).Return(&models.Camera{ID: cameraID}, nil).Once()
	d.cameras.On("GetByID", mock.Anything, compatID).Return(&models.Camera{ID: compatID}, nil).Once()
	d.housings.On("SlugExists", mock.Anything, manufacturerID, "na-z8", "").Return(false, nil).Once()

	var created *models.Housing
	d.housings.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Housing)
			compat := args.Get(2).([]models.Compatibility)
			require.Len(t, compat, 1)
			assert.Equal(t, compatID, compat[0].CameraID)
			assert.True(t, compat[0].IsRecommended)
		}).
		Return(nil).Once()
	d.cache.On("Invalidate", mock.Anything).Return(nil).Once()

	req := decodeHousingRequest(t, `{
		"model": "NA-Z8", "name": "NA Z8", "priceAmount": 0, "priceCurrency": "usd",
		"depthRating": 100, "material": " ", "housingManufacturerId": "`+manufacturerID+`",
		"cameraId": "`+cameraID+`",
		"compatibility": [
			{"cameraId": "`+compatID+`", "isRecommended": true},
			{"cameraId": "`+compatID+`"}
		]
	}`)

	// The id is generated inside Create, so the reload is matched by argument.
	d.housings.On("GetByID", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			require.Equal(t, created.ID, args.String(1))
		}).
		Return(&models.HousingRow{}, nil).Once()
	d.housings.On("ListCompatibility", mock.Anything, mock.Anything).Return([]models.Compatibility{}, nil).Once()
	d.reviews.On("RatingsByHousing", mock.Anything, mock.Anything).Return(map[string][]int{}, nil).Once()

	res, err := d.service().Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)

	require.NotNil(t, created)
	assert.Equal(t, "na-z8", created.Slug)
	assert.Equal(t, "USD", created.PriceCurrency)
	assert.False(t, created.PriceAmount.Valid, "zero price is stored as unpriced")
	assert.Equal(t, "100m/328ft", *created.DepthRating)
	assert.Nil(t, created.Material)
	assert.True(t, created.InStock)
	assert.True(t, created.IsActive)
	assert.Equal(t, &cameraID, created.CameraID)
}

func TestHousingServiceUpdateKeepsFlagsAndCompatibility(t *testing.T) {
	t.Parallel()

	d := newHousingDeps(t)
	id, manufacturerID := gofakeit.UUID(), gofakeit.UUID()
	existing := &models.HousingRow{Housing: models.Housing{ID: id, InStock: false, IsActive: false, HousingManufacturerID: manufacturerID}}

	d.housings.On("GetByID", mock.Anything, id).Return(existing, nil).Twice()
	d.manufacturers.On("GetByID", mock.Anything, manufacturerID).
		Return(&models.HousingManufacturer{ID: manufacturerID}, nil).Once()
	d.housings.On("SlugExists", mock.Anything, manufacturerID, "sf-a7iv", id).Return(false, nil).Once()
	d.housings.On("Update", mock.Anything, mock.MatchedBy(func(h *models.Housing) bool {
		return h.ID == id && !h.InStock && !h.IsActive && h.Price() != nil && *h.Price() == 399
	}), []models.Compatibility(nil)).Return(true, nil).Once()
	d.cache.On("Invalidate", mock.Anything).Return(nil).Once()
	d.housings.On("ListCompatibility", mock.Anything, []string{id}).Return([]models.Compatibility{}, nil).Once()
	d.reviews.On("RatingsByHousing", mock.Anything, []string{id}).Return(map[string][]int{id: {4, 5}}, nil).Once()

	res, err := d.service().Update(context.Background(), id, HousingRequest{
		Model: "SF-A7IV", Name: "SF A7IV", HousingManufacturerID: manufacturerID, PriceAmount: ptr(decimal.NewFromInt(399)),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.ReviewCount)
	assert.InDelta(t, 4.5, *res.AverageRating, 0.0001)
}

func TestHousingServiceDelete(t *testing.T) {
	t.Parallel()

	d := newHousingDeps(t)
	id := gofakeit.UUID()
	d.housings.On("Delete", mock.Anything, id).Return(false, nil).Once()

	err := d.service().Delete(context.Background(), id)
	require.ErrorIs(t, err, utils.ErrNotFound)
	assert.EqualError(t, err, "Housing not found")
}
