package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/repository"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// CompatibilityRequest links the housing to an additional camera.
type CompatibilityRequest struct {
	CameraID      string  `json:"cameraId"`
	IsRecommended bool    `json:"isRecommended"`
	Notes         *string `json:"notes"`
}

// HousingRequest is the editable field set of a housing. DepthRating accepts
// a number of meters or free text. A nil Compatibility leaves existing entries
// untouched on update; an empty one clears them.
type HousingRequest struct {
	Model                 string                 `json:"model"`
	Name                  string                 `json:"name"`
	Description           *string                `json:"description"`
	PriceAmount           *decimal.Decimal       `json:"priceAmount"`
	PriceCurrency         string                 `json:"priceCurrency"`
	DepthRating           models.DepthInput      `json:"depthRating"`
	Material              *string                `json:"material"`
	Category              *string                `json:"category"`
	InStock               *bool                  `json:"inStock"`
	IsActive              *bool                  `json:"isActive"`
	HousingManufacturerID string                 `json:"housingManufacturerId"`
	CameraID              *string                `json:"cameraId"`
	Compatibility         []CompatibilityRequest `json:"compatibility"`
}

// HousingService edits housings and their camera compatibility.
type HousingService struct {
	housings      HousingRepository
	manufacturers HousingManufacturerRepository
	cameras       CameraRepository
	cache         CatalogCache
	views         viewBuilder
}

// NewHousingService constructs a HousingService.
func NewHousingService(
	housings HousingRepository,
	manufacturers HousingManufacturerRepository,
	cameras CameraRepository,
	reviews ReviewRepository,
	cache CatalogCache,
) *HousingService {
	return &HousingService{
		housings:      housings,
		manufacturers: manufacturers,
		cameras:       cameras,
		cache:         cache,
		views:         viewBuilder{housings: housings, reviews: reviews},
	}
}

// List returns every housing, active or not, ordered by model.
func (s *HousingService) List(ctx context.Context) ([]models.HousingView, error) {
	rows, err := s.housings.List(ctx, repository.HousingFilter{Order: repository.OrderByModel})
	if err != nil {
		return nil, fmt.Errorf("list housings: %w", err)
	}
	return s.views.build(ctx, rows)
}

// prepare validates req and resolves its references. The returned housing
// carries every editable field but no id or timestamps.
func (s *HousingService) prepare(ctx context.Context, req HousingRequest, excludeID string) (*models.Housing, []models.Compatibility, error) {
	model := strings.TrimSpace(req.Model)
	name := strings.TrimSpace(req.Name)
	manufacturerID := strings.TrimSpace(req.HousingManufacturerID)
	if model == "" || name == "" || manufacturerID == "" {
		return nil, nil, utils.NewValidationError("Model, name and housing manufacturer are required")
	}

	var price decimal.NullDecimal
	if req.PriceAmount != nil {
		if req.PriceAmount.IsNegative() {
			return nil, nil, utils.NewValidationError("Price must not be negative")
		}
		if !req.PriceAmount.IsZero() {
			price = decimal.NewNullDecimal(req.PriceAmount.Round(2))
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(req.PriceCurrency))
	if currency == "" {
		currency = models.DefaultCurrency
	}
	if !currencyPattern.MatchString(currency) {
		return nil, nil, utils.NewValidationError("Price currency must be a 3-letter ISO code")
	}

	manufacturer, err := s.manufacturers.GetByID(ctx, manufacturerID)
	if err != nil {
		return nil, nil, fmt.Errorf("get manufacturer: %w", err)
	}
	if manufacturer == nil {
		return nil, nil, utils.NewNotFoundError("Housing manufacturer not found")
	}

	cameraID := optionalText(req.CameraID)
	if cameraID != nil {
		if err := s.requireCamera(ctx, *cameraID); err != nil {
			return nil, nil, err
		}
	}

	compat, err := s.compatibility(ctx, req.Compatibility)
	if err != nil {
		return nil, nil, err
	}

	slug := utils.Slugify(name)
	exists, err := s.housings.SlugExists(ctx, manufacturer.ID, slug, excludeID)
	if err != nil {
		return nil, nil, fmt.Errorf("check housing slug: %w", err)
	}
	if exists {
		return nil, nil, utils.NewConflictError("A housing with this name already exists for this manufacturer")
	}

	return &models.Housing{
		Model:                 model,
		Name:                  name,
		Slug:                  slug,
		Description:           optionalText(req.Description),
		PriceAmount:           price,
		PriceCurrency:         currency,
		DepthRating:           req.DepthRating.Value,
		Material:              optionalText(req.Material),
		Category:              optionalText(req.Category),
		HousingManufacturerID: manufacturer.ID,
		CameraID:              cameraID,
	}, compat, nil
}

func (s *HousingService) requireCamera(ctx context.Context, id string) error {
	c, err := s.cameras.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get camera: %w", err)
	}
	if c == nil {
		return utils.NewNotFoundError("Camera not found")
	}
	return nil
}

// compatibility resolves the requested entries. Repeated cameras keep their
// first entry. A nil request yields nil.
func (s *HousingService) compatibility(ctx context.Context, req []CompatibilityRequest) ([]models.Compatibility, error) {
	if req == nil {
		return nil, nil
	}
	out := make([]models.Compatibility, 0, len(req))
	seen := make(map[string]bool, len(req))
	for _, r := range req {
		id := strings.TrimSpace(r.CameraID)
		if id == "" {
			return nil, utils.NewValidationError("Compatibility entries require a camera")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		if err := s.requireCamera(ctx, id); err != nil {
			return nil, err
		}
		out = append(out, models.Compatibility{CameraID: id, IsRecommended: r.IsRecommended, Notes: optionalText(r.Notes)})
	}
	return out, nil
}

// Create validates req, derives the slug and stores a new housing with its
// compatibility entries.
func (s *HousingService) Create(ctx context.Context, req HousingRequest) (*models.HousingView, error) {
	h, compat, err := s.prepare(ctx, req, "")
	if err != nil {
		return nil, err
	}

	h.ID = utils.NewID()
	h.InStock = boolOr(req.InStock, true)
	h.IsActive = boolOr(req.IsActive, true)
	h.CreatedAt = now()
	h.UpdatedAt = h.CreatedAt
	if err := s.housings.Create(ctx, h, compat); err != nil {
		return nil, fmt.Errorf("create housing: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return s.load(ctx, h.ID)
}

// Update replaces the editable fields of housing id.
func (s *HousingService) Update(ctx context.Context, id string, req HousingRequest) (*models.HousingView, error) {
	existing, err := s.housings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get housing: %w", err)
	}
	if existing == nil {
		return nil, utils.NewNotFoundError("Housing not found")
	}

	h, compat, err := s.prepare(ctx, req, id)
	if err != nil {
		return nil, err
	}

	h.ID = existing.ID
	h.InStock = boolOr(req.InStock, existing.InStock)
	h.IsActive = boolOr(req.IsActive, existing.IsActive)
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = now()
	ok, err := s.housings.Update(ctx, h, compat)
	if err != nil {
		return nil, fmt.Errorf("update housing: %w", err)
	}
	if !ok {
		return nil, utils.NewNotFoundError("Housing not found")
	}

	invalidateCatalog(ctx, s.cache)
	return s.load(ctx, h.ID)
}

// Delete removes housing id. Compatibility entries and reviews go with it.
func (s *HousingService) Delete(ctx context.Context, id string) error {
	ok, err := s.housings.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete housing: %w", err)
	}
	if !ok {
		return utils.NewNotFoundError("Housing not found")
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}

func (s *HousingService) load(ctx context.Context, id string) (*models.HousingView, error) {
	row, err := s.housings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload housing: %w", err)
	}
	if row == nil {
		return nil, utils.NewNotFoundError("Housing not found")
	}
	return s.views.buildOne(ctx, row)
}
