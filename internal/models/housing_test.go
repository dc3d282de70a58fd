package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHousingPrice(t *testing.T) {
	h := Housing{PriceAmount: decimal.NewNullDecimal(decimal.RequireFromString("5499.99"))}
	require.NotNil(t, h.Price())
	assert.InDelta(t, 5499.99, *h.Price(), 0.0001)

	assert.Nil(t, Housing{}.Price())
}

func TestHousingRowToView(t *testing.T) {
	cameraID := "cam-1"
	row := HousingRow{
		Housing: Housing{
			ID:                    "h-1",
			Model:                 "NA-Z8",
			Name:                  "Nauticam NA-Z8",
			Slug:                  "nauticam-na-z8",
			PriceAmount:           decimal.NewNullDecimal(decimal.NewFromInt(5500)),
			PriceCurrency:         "USD",
			DepthRating:           strPtr("100m/330ft"),
			HousingManufacturerID: "m-1",
			CameraID:              &cameraID,
		},
		ManufacturerName: "Nauticam",
		ManufacturerSlug: "nauticam",
		CameraName:       strPtr("Z8"),
		CameraSlug:       strPtr("nikon-z8"),
		CameraBrandID:    strPtr("b-1"),
		CameraBrandName:  strPtr("Nikon"),
		CameraBrandSlug:  strPtr("nikon"),
	}

	v := row.ToView()
	assert.Equal(t, "NA-Z8", v.Model)
	assert.Equal(t, ManufacturerSummary{ID: "m-1", Name: "Nauticam", Slug: "nauticam"}, v.Manufacturer)
	require.NotNil(t, v.PriceAmount)
	assert.Equal(t, 5500.0, *v.PriceAmount)
	require.NotNil(t, v.Camera)
	assert.Equal(t, "Nikon Z8", v.Camera.FullName())
	assert.Empty(t, v.Compatibility)
	assert.NotNil(t, v.Compatibility)
}

func TestHousingRowToViewWithoutCamera(t *testing.T) {
	v := HousingRow{Housing: Housing{ID: "h-2"}}.ToView()
	assert.Nil(t, v.Camera)
	assert.Nil(t, v.PriceAmount)
}

func TestSummarizeRatings(t *testing.T) {
	empty := SummarizeRatings(nil)
	assert.Nil(t, empty.AverageRating)
	assert.Zero(t, empty.ReviewCount)

	s := SummarizeRatings([]int{5, 4, 4})
	require.NotNil(t, s.AverageRating)
	assert.InDelta(t, 4.3333, *s.AverageRating, 0.001)
	assert.Equal(t, 3, s.ReviewCount)
}

func TestCameraFullName(t *testing.T) {
	assert.Equal(t, "Sony A7 IV", Camera{Name: "A7 IV", BrandName: "Sony"}.FullName())
	withBrand := Camera{Name: "Z8", CameraManufacturerID: "b", BrandName: "Nikon", BrandSlug: "nikon"}.WithBrand()
	require.NotNil(t, withBrand.Brand)
	assert.Equal(t, "nikon", withBrand.Brand.Slug)
	assert.Equal(t, "Z8", Camera{Name: "Z8"}.FullName())
}
