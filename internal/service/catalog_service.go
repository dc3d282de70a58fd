package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/underwaterhousings/catalog_api/internal/filter"
	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/repository"
	"github.com/underwaterhousings/catalog_api/internal/route"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

// featuredHousings is the number of housings shown on the home page.
const featuredHousings = 6

// ListFilter is the server-side filter of the public housing listing.
// It is independent of the browsing filter in package filter.
type ListFilter struct {
	ManufacturerSlug string
	Category         string
	InStock          bool
	MaxPrice         *float64
}

func (f ListFilter) cacheKey() string {
	maxPrice := ""
	if f.MaxPrice != nil {
		maxPrice = strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64)
	}
	return strings.Join([]string{
		"housings",
		f.ManufacturerSlug,
		f.Category,
		strconv.FormatBool(f.InStock),
		maxPrice,
	}, ":")
}

// HomePage is the data of the landing page.
type HomePage struct {
	Manufacturers []ManufacturerCard   `json:"manufacturers"`
	Housings      []models.HousingView `json:"housings"`
	Source        string               `json:"source"`
}

// ManufacturerPage lists the active housings of one manufacturer.
type ManufacturerPage struct {
	Manufacturer models.HousingManufacturer `json:"manufacturer"`
	Housings     []models.HousingView       `json:"housings"`
}

// HousingDetail is the data of a housing detail page.
type HousingDetail struct {
	Housing         models.HousingView   `json:"housing"`
	ManufacturerURL string               `json:"manufacturerUrl"`
	Related         []models.HousingView `json:"related"`
}

// CameraIndexPage lists active camera brands with their cameras.
type CameraIndexPage struct {
	Manufacturers []models.CameraManufacturer `json:"manufacturers"`
}

// CameraListing is a camera together with the housings that fit it.
type CameraListing struct {
	models.Camera
	Housings []models.HousingView `json:"housings"`
}

// CameraManufacturerPage lists the cameras of a brand and their housings.
type CameraManufacturerPage struct {
	Manufacturer models.ManufacturerSummary `json:"manufacturer"`
	Cameras      []CameraListing            `json:"cameras"`
}

// BrowsePage is the filterable housing listing.
type BrowsePage struct {
	Housings []models.HousingView `json:"housings"`
	Count    int                  `json:"count"`
	Total    int                  `json:"total"`
	Filters  filter.State         `json:"filters"`
	Active   bool                 `json:"active"`
	Options  filter.Options       `json:"options"`
}

// CatalogService answers the read-only browsing queries.
type CatalogService struct {
	manufacturers HousingManufacturerRepository
	brands        CameraManufacturerRepository
	cameras       CameraRepository
	housings      HousingRepository
	cache         CatalogCache
	views         viewBuilder
}

// NewCatalogService constructs a CatalogService. cache may be nil.
func NewCatalogService(
	manufacturers HousingManufacturerRepository,
	brands CameraManufacturerRepository,
	cameras CameraRepository,
	housings HousingRepository,
	reviews ReviewRepository,
	cache CatalogCache,
) *CatalogService {
	return &CatalogService{
		manufacturers: manufacturers,
		brands:        brands,
		cameras:       cameras,
		housings:      housings,
		cache:         cache,
		views:         viewBuilder{housings: housings, reviews: reviews},
	}
}

// ListHousings returns active housings matching f, ordered by manufacturer
// and housing name, with compatibility and review aggregates attached.
func (s *CatalogService) ListHousings(ctx context.Context, f ListFilter) ([]models.HousingView, error) {
	key := f.cacheKey()
	if s.cache != nil {
		var cached []models.HousingView
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Catalog cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	rows, err := s.housings.List(ctx, repository.HousingFilter{
		ManufacturerSlug: f.ManufacturerSlug,
		Category:         f.Category,
		InStockOnly:      f.InStock,
		MaxPrice:         f.MaxPrice,
		ActiveOnly:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("list housings: %w", err)
	}
	views, err := s.views.build(ctx, rows)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, views); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Catalog cache write failed")
		}
	}
	return views, nil
}

// ListManufacturers returns all housing manufacturers with their housing counts.
func (s *CatalogService) ListManufacturers(ctx context.Context) ([]models.HousingManufacturer, error) {
	return s.manufacturers.List(ctx)
}

// ListManufacturerSummaries returns the navigation projection of housing manufacturers.
func (s *CatalogService) ListManufacturerSummaries(ctx context.Context) ([]models.ManufacturerSummary, error) {
	return s.manufacturers.ListSimple(ctx)
}

// ListCameraManufacturers returns active camera brands with their cameras.
func (s *CatalogService) ListCameraManufacturers(ctx context.Context) ([]models.CameraManufacturer, error) {
	brands, err := s.brands.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	cameras, err := s.cameras.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cameras: %w", err)
	}

	byBrand := lo.GroupBy(cameras, func(c models.Camera) string { return c.CameraManufacturerID })
	for i := range brands {
		brands[i].URL = route.CameraManufacturer(brands[i].Slug)
		brands[i].Cameras = byBrand[brands[i].ID]
		if brands[i].Cameras == nil {
			brands[i].Cameras = []models.Camera{}
		}
	}
	return brands, nil
}

// ListCameraManufacturerSummaries returns the navigation projection of active camera brands.
func (s *CatalogService) ListCameraManufacturerSummaries(ctx context.Context) ([]models.ManufacturerSummary, error) {
	return s.brands.ListSimple(ctx, true)
}

// Home returns the landing page. When the store is unavailable the built-in
// manufacturer list is served instead, with no housings.
func (s *CatalogService) Home(ctx context.Context) *HomePage {
	manufacturers, err := s.manufacturers.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Store not available, using fallback data")
		cards := fallbackManufacturers()
		for i := range cards {
			cards[i].URL = route.Manufacturer(cards[i].Slug)
		}
		return &HomePage{Manufacturers: cards, Housings: []models.HousingView{}, Source: SourceFallback}
	}

	cards := make([]ManufacturerCard, 0, len(manufacturers))
	for _, m := range manufacturers {
		cards = append(cards, ManufacturerCard{
			ID:           m.ID,
			Name:         m.Name,
			Slug:         m.Slug,
			Description:  m.Description,
			KeyFeatures:  []string{},
			HousingCount: m.HousingCount,
			URL:          route.Manufacturer(m.Slug),
		})
	}

	page := &HomePage{Manufacturers: cards, Housings: []models.HousingView{}, Source: SourceDatabase}
	rows, err := s.housings.List(ctx, repository.HousingFilter{ActiveOnly: true, Order: repository.OrderByName, Limit: featuredHousings})
	if err != nil {
		log.Warn().Err(err).Msg("Could not fetch featured housings")
		return page
	}
	if page.Housings, err = s.views.build(ctx, rows); err != nil {
		log.Warn().Err(err).Msg("Could not build featured housings")
		page.Housings = []models.HousingView{}
	}
	return page
}

// ManufacturerPage returns a manufacturer and its active housings by name.
func (s *CatalogService) ManufacturerPage(ctx context.Context, slug string) (*ManufacturerPage, error) {
	m, err := s.manufacturers.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get manufacturer: %w", err)
	}
	if m == nil {
		return nil, utils.NewNotFoundError("Manufacturer not found")
	}

	rows, err := s.housings.List(ctx, repository.HousingFilter{ManufacturerID: m.ID, ActiveOnly: true, Order: repository.OrderByName})
	if err != nil {
		return nil, fmt.Errorf("list housings: %w", err)
	}
	views, err := s.views.build(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &ManufacturerPage{Manufacturer: *m, Housings: views}, nil
}

// HousingDetail resolves a housing by its manufacturer slug and its own slug.
// Inactive housings are not found. Related lists the manufacturer's other
// housings for the same primary camera.
func (s *CatalogService) HousingDetail(ctx context.Context, manufacturerSlug, housingSlug string) (*HousingDetail, error) {
	row, err := s.housings.GetBySlugs(ctx, manufacturerSlug, housingSlug)
	if err != nil {
		return nil, fmt.Errorf("get housing: %w", err)
	}
	if row == nil || !row.IsActive {
		return nil, utils.NewNotFoundError("Housing not found")
	}

	view, err := s.views.buildOne(ctx, row)
	if err != nil {
		return nil, err
	}

	detail := &HousingDetail{
		Housing:         *view,
		ManufacturerURL: route.Manufacturer(row.ManufacturerSlug),
		Related:         []models.HousingView{},
	}
	if row.CameraID == nil {
		return detail, nil
	}

	siblings, err := s.housings.List(ctx, repository.HousingFilter{ManufacturerID: row.HousingManufacturerID, ActiveOnly: true, Order: repository.OrderByName})
	if err != nil {
		return nil, fmt.Errorf("list related housings: %w", err)
	}
	var related []models.HousingRow
	for _, h := range siblings {
		if h.ID != row.ID && h.CameraID != nil && *h.CameraID == *row.CameraID {
			related = append(related, h)
		}
	}
	if detail.Related, err = s.views.build(ctx, related); err != nil {
		return nil, err
	}
	return detail, nil
}

// CameraIndex returns active camera brands with their cameras.
func (s *CatalogService) CameraIndex(ctx context.Context) (*CameraIndexPage, error) {
	brands, err := s.ListCameraManufacturers(ctx)
	if err != nil {
		return nil, err
	}
	return &CameraIndexPage{Manufacturers: brands}, nil
}

// CameraManufacturerPage lists the cameras of an active brand, each with the
// active housings that fit it as primary or compatible camera.
func (s *CatalogService) CameraManufacturerPage(ctx context.Context, slug string) (*CameraManufacturerPage, error) {
	brand, err := s.brands.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	if brand == nil || !brand.IsActive {
		return nil, utils.NewNotFoundError("Camera manufacturer not found")
	}

	cameras, err := s.cameras.ListByManufacturer(ctx, brand.ID)
	if err != nil {
		return nil, fmt.Errorf("list cameras: %w", err)
	}
	rows, err := s.housings.List(ctx, repository.HousingFilter{CameraManufacturerID: brand.ID, ActiveOnly: true, Order: repository.OrderByManufacturer})
	if err != nil {
		return nil, fmt.Errorf("list housings: %w", err)
	}
	views, err := s.views.build(ctx, rows)
	if err != nil {
		return nil, err
	}

	byCamera := make(map[string][]models.HousingView)
	for _, v := range views {
		fits := make(map[string]bool)
		if v.Camera != nil {
			fits[v.Camera.ID] = true
		}
		for _, c := range v.Compatibility {
			fits[c.Camera.ID] = true
		}
		for id := range fits {
			byCamera[id] = append(byCamera[id], v)
		}
	}

	listings := make([]CameraListing, 0, len(cameras))
	for _, c := range cameras {
		housings := byCamera[c.ID]
		if housings == nil {
			housings = []models.HousingView{}
		}
		listings = append(listings, CameraListing{Camera: c, Housings: housings})
	}
	return &CameraManufacturerPage{Manufacturer: brand.Summary(), Cameras: listings}, nil
}

// Browse applies the browsing filter to the full active catalog.
func (s *CatalogService) Browse(ctx context.Context, state filter.State) (*BrowsePage, error) {
	all, err := s.ListHousings(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}
	matched := filter.Apply(all, state)
	return &BrowsePage{
		Housings: matched,
		Count:    len(matched),
		Total:    len(all),
		Filters:  state,
		Active:   state.IsActive(),
		Options:  filter.BuildOptions(all),
	}, nil
}

// LegacyPath maps a pre-/housings path to its canonical form. Housing slugs
// are only unique per manufacturer, so both segments are resolved together.
func (s *CatalogService) LegacyPath(ctx context.Context, manufacturerSlug, housingSlug string) (string, error) {
	if housingSlug == "" {
		m, err := s.manufacturers.GetBySlug(ctx, manufacturerSlug)
		if err != nil {
			return "", fmt.Errorf("get manufacturer: %w", err)
		}
		if m == nil {
			return "", utils.NewNotFoundError("Manufacturer not found")
		}
		return route.Manufacturer(m.Slug), nil
	}

	row, err := s.housings.GetBySlugs(ctx, manufacturerSlug, housingSlug)
	if err != nil {
		return "", fmt.Errorf("get housing: %w", err)
	}
	if row == nil {
		return "", utils.NewNotFoundError("Housing not found")
	}
	return route.Housing(row.ManufacturerSlug, row.Slug), nil
}
