package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/underwaterhousings/catalog_api/internal/database/databasetest"
	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/repository"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

type fixture struct {
	db            *sqlx.DB
	manufacturers *repository.HousingManufacturerRepository
	brands        *repository.CameraManufacturerRepository
	cameras       *repository.CameraRepository
	housings      *repository.HousingRepository
	reviews       *repository.ReviewRepository
}

func newFixture(t *testing.T) *fixture {
	db := databasetest.New(t)
	return &fixture{
		db:            db,
		manufacturers: repository.NewHousingManufacturerRepository(db),
		brands:        repository.NewCameraManufacturerRepository(db),
		cameras:       repository.NewCameraRepository(db),
		housings:      repository.NewHousingRepository(db),
		reviews:       repository.NewReviewRepository(db),
	}
}

func now() time.Time { return time.Now().UTC().Truncate(time.Second) }

func (f *fixture) manufacturer(t *testing.T, name string) *models.HousingManufacturer {
	m := &models.HousingManufacturer{ID: utils.NewID(), Name: name, Slug: utils.Slugify(name), CreatedAt: now(), UpdatedAt: now()}
	require.NoError(t, f.manufacturers.Create(context.Background(), m))
	return m
}

func (f *fixture) brand(t *testing.T, name string, active bool) *models.CameraManufacturer {
	b := &models.CameraManufacturer{ID: utils.NewID(), Name: name, Slug: utils.Slugify(name), IsActive: active, CreatedAt: now(), UpdatedAt: now()}
	require.NoError(t, f.brands.Create(context.Background(), b))
	return b
}

func (f *fixture) camera(t *testing.T, brand *models.CameraManufacturer, name string) *models.Camera {
	c := &models.Camera{ID: utils.NewID(), Name: name, Slug: utils.Slugify(brand.Name + " " + name), CameraManufacturerID: brand.ID, CreatedAt: now(), UpdatedAt: now()}
	require.NoError(t, f.cameras.Create(context.Background(), c))
	return c
}

func (f *fixture) housing(t *testing.T, m *models.HousingManufacturer, model, name string, price string, cameraID *string, compat ...models.Compatibility) *models.Housing {
	h := &models.Housing{
		ID:                    utils.NewID(),
		Model:                 model,
		Name:                  name,
		Slug:                  utils.Slugify(name),
		PriceCurrency:         models.DefaultCurrency,
		InStock:               true,
		IsActive:              true,
		HousingManufacturerID: m.ID,
		CameraID:              cameraID,
		CreatedAt:             now(),
		UpdatedAt:             now(),
	}
	if price != "" {
		h.PriceAmount = decimal.NewNullDecimal(decimal.RequireFromString(price))
	}
	depth := models.FormatDepth(100)
	h.DepthRating = &depth
	require.NoError(t, f.housings.Create(context.Background(), h, compat))
	return h
}

func TestHousingManufacturerRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	nauticam := f.manufacturer(t, "Nauticam")
	seaFrogs := f.manufacturer(t, "Sea Frogs")
	f.housing(t, nauticam, "NA-Z8", "NA Z8", "5500", nil)
	f.housing(t, nauticam, "NA-R5", "NA R5", "4900", nil)

	list, err := f.manufacturers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Nauticam", list[0].Name)
	assert.Equal(t, 2, list[0].HousingCount)
	assert.Equal(t, 0, list[1].HousingCount)

	simple, err := f.manufacturers.ListSimple(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ManufacturerSummary{nauticam.Summary(), seaFrogs.Summary()}, simple)

	got, err := f.manufacturers.GetBySlug(ctx, "sea-frogs")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, seaFrogs.ID, got.ID)

	missing, err := f.manufacturers.GetByID(ctx, utils.NewID())
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := f.manufacturers.SlugExists(ctx, "nauticam", "")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = f.manufacturers.SlugExists(ctx, "nauticam", nauticam.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	n, err := f.manufacturers.CountHousings(ctx, nauticam.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	desc := "Budget housings"
	seaFrogs.Description = &desc
	seaFrogs.Name = "SeaFrogs"
	seaFrogs.Slug = "seafrogs"
	ok, err := f.manufacturers.Update(ctx, seaFrogs)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = f.manufacturers.GetByID(ctx, seaFrogs.ID)
	require.NoError(t, err)
	assert.Equal(t, "seafrogs", got.Slug)
	assert.Equal(t, &desc, got.Description)

	ok, err = f.manufacturers.Delete(ctx, seaFrogs.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.manufacturers.Delete(ctx, seaFrogs.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCameraManufacturerRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sony := f.brand(t, "Sony", true)
	f.brand(t, "Kodak", false)
	f.camera(t, sony, "A7 IV")

	all, err := f.brands.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := f.brands.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Sony", active[0].Name)
	assert.Equal(t, 1, active[0].CameraCount)

	simple, err := f.brands.ListSimple(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []models.ManufacturerSummary{sony.Summary()}, simple)

	n, err := f.brands.CountCameras(ctx, sony.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sony.IsActive = false
	ok, err := f.brands.Update(ctx, sony)
	require.NoError(t, err)
	assert.True(t, ok)

	active, err = f.brands.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestCameraRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	nikon := f.brand(t, "Nikon", true)
	sony := f.brand(t, "Sony", true)
	z8 := f.camera(t, nikon, "Z8")
	zf := f.camera(t, nikon, "Zf")
	a7 := f.camera(t, sony, "A7 IV")

	got, err := f.cameras.GetByID(ctx, z8.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Brand)
	assert.Equal(t, "Nikon Z8", got.FullName())
	assert.Equal(t, "nikon-z8", got.Slug)

	byBrand, err := f.cameras.ListByManufacturer(ctx, nikon.ID)
	require.NoError(t, err)
	require.Len(t, byBrand, 2)
	assert.Equal(t, "Z8", byBrand[0].Name)

	exists, err := f.cameras.SlugExists(ctx, nikon.ID, "nikon-z8", "")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = f.cameras.SlugExists(ctx, sony.ID, "nikon-z8", "")
	require.NoError(t, err)
	assert.False(t, exists)

	m := f.manufacturer(t, "Nauticam")
	f.housing(t, m, "NA-Z8", "NA Z8", "5500", &z8.ID)
	f.housing(t, m, "NA-ZF", "NA Zf", "3000", &zf.ID, models.Compatibility{CameraID: z8.ID})
	f.housing(t, m, "NA-A7", "NA A7", "3500", &a7.ID)

	n, err := f.cameras.CountHousings(ctx, z8.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = f.cameras.CountHousings(ctx, a7.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	missing, err := f.cameras.GetByID(ctx, utils.NewID())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHousingRepositoryList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	nikon := f.brand(t, "Nikon", true)
	olympus := f.brand(t, "OM System", true)
	z8 := f.camera(t, nikon, "Z8")
	om5 := f.camera(t, olympus, "OM-5 II")

	nauticam := f.manufacturer(t, "Nauticam")
	seaFrogs := f.manufacturer(t, "Sea Frogs")
	naZ8 := f.housing(t, nauticam, "NA-Z8", "Z8 Housing", "5500", &z8.ID)
	naOM := f.housing(t, nauticam, "NA-OM5II", "OM-5 II Housing", "1850", &om5.ID,
		models.Compatibility{CameraID: z8.ID, IsRecommended: true})
	sf := f.housing(t, seaFrogs, "SF-Z8", "Z8 Housing", "", &z8.ID)

	all, err := f.housings.List(ctx, repository.HousingFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{naOM.ID, naZ8.ID, sf.ID}, ids(all))
	assert.Equal(t, "Nauticam", all[0].ManufacturerName)
	require.NotNil(t, all[0].CameraBrandName)
	assert.Equal(t, "OM System", *all[0].CameraBrandName)

	bySlug, err := f.housings.List(ctx, repository.HousingFilter{ManufacturerSlug: "sea-frogs"})
	require.NoError(t, err)
	assert.Equal(t, []string{sf.ID}, ids(bySlug))

	maxPrice := 2000.0
	cheap, err := f.housings.List(ctx, repository.HousingFilter{MaxPrice: &maxPrice})
	require.NoError(t, err)
	assert.Equal(t, []string{naOM.ID}, ids(cheap))

	byBrand, err := f.housings.List(ctx, repository.HousingFilter{CameraManufacturerID: nikon.ID})
	require.NoError(t, err)
	assert.Len(t, byBrand, 3)

	byModel, err := f.housings.List(ctx, repository.HousingFilter{Order: repository.OrderByModel, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{naOM.ID, naZ8.ID}, ids(byModel))

	naZ8.IsActive = false
	ok, err := f.housings.Update(ctx, naZ8, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	active, err := f.housings.List(ctx, repository.HousingFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestHousingRepositoryWrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	nikon := f.brand(t, "Nikon", true)
	z8 := f.camera(t, nikon, "Z8")
	zf := f.camera(t, nikon, "Zf")
	nauticam := f.manufacturer(t, "Nauticam")

	notes := "needs port adapter"
	h := f.housing(t, nauticam, "NA-Z8", "NA Z8", "5500.50", &z8.ID,
		models.Compatibility{CameraID: zf.ID, Notes: &notes})

	row, err := f.housings.GetBySlugs(ctx, "nauticam", "na-z8")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, h.ID, row.ID)
	assert.Equal(t, 5500.5, *row.Price())
	assert.Equal(t, "100m/328ft", *row.DepthRating)

	compat, err := f.housings.ListCompatibility(ctx, []string{h.ID})
	require.NoError(t, err)
	require.Len(t, compat, 1)
	assert.Equal(t, "Zf", compat[0].CameraName)
	assert.Equal(t, "Nikon", compat[0].CameraBrandName)
	assert.Equal(t, &notes, compat[0].Notes)

	exists, err := f.housings.SlugExists(ctx, nauticam.ID, "na-z8", h.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = f.housings.SlugExists(ctx, nauticam.ID, "na-z8", "")
	require.NoError(t, err)
	assert.True(t, exists)

	h.PriceAmount = decimal.NullDecimal{}
	ok, err := f.housings.Update(ctx, h, []models.Compatibility{})
	require.NoError(t, err)
	assert.True(t, ok)

	row, err = f.housings.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Nil(t, row.Price())
	compat, err = f.housings.ListCompatibility(ctx, []string{h.ID})
	require.NoError(t, err)
	assert.Empty(t, compat)

	missing := *h
	missing.ID = utils.NewID()
	ok, err = f.housings.Update(ctx, &missing, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.housings.Delete(ctx, h.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	row, err = f.housings.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestHousingCreateRollsBackOnBadCompatibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m := f.manufacturer(t, "Isotta")
	h := &models.Housing{
		ID: utils.NewID(), Model: "IS-1", Name: "Isotta One", Slug: "isotta-one",
		PriceCurrency: models.DefaultCurrency, IsActive: true, HousingManufacturerID: m.ID,
		CreatedAt: now(), UpdatedAt: now(),
	}
	err := f.housings.Create(ctx, h, []models.Compatibility{{CameraID: utils.NewID()}})
	require.Error(t, err)

	row, err := f.housings.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestReviewRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m := f.manufacturer(t, "AOI")
	h1 := f.housing(t, m, "UH-1", "UH One", "900", nil)
	h2 := f.housing(t, m, "UH-2", "UH Two", "950", nil)

	for _, rating := range []int{5, 4} {
		require.NoError(t, f.reviews.Create(ctx, &models.Review{ID: utils.NewID(), HousingID: h1.ID, Rating: rating, CreatedAt: now()}))
	}

	ratings, err := f.reviews.RatingsByHousing(ctx, []string{h1.ID, h2.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{5, 4}, ratings[h1.ID])
	assert.NotContains(t, ratings, h2.ID)

	empty, err := f.reviews.RatingsByHousing(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	err = f.reviews.Create(ctx, &models.Review{ID: utils.NewID(), HousingID: h2.ID, Rating: 6, CreatedAt: now()})
	assert.Error(t, err)
}

func ids(rows []models.HousingRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}
