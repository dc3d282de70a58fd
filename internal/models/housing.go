package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a housing is saved without a currency.
const DefaultCurrency = "USD"

// Housing is the stored form of an underwater housing. It always belongs to
// exactly one HousingManufacturer; Slug is unique within that manufacturer.
type Housing struct {
	ID                    string              `db:"id" json:"id"`
	Model                 string              `db:"model" json:"model"`
	Name                  string              `db:"name" json:"name"`
	Slug                  string              `db:"slug" json:"slug"`
	Description           *string             `db:"description" json:"description"`
	PriceAmount           decimal.NullDecimal `db:"price_amount" json:"-"`
	PriceCurrency         string              `db:"price_currency" json:"priceCurrency"`
	DepthRating           *string             `db:"depth_rating" json:"depthRating"`
	Material              *string             `db:"material" json:"material"`
	Category              *string             `db:"category" json:"category"`
	InStock               bool                `db:"in_stock" json:"inStock"`
	IsActive              bool                `db:"is_active" json:"isActive"`
	HousingManufacturerID string              `db:"housing_manufacturer_id" json:"housingManufacturerId"`
	CameraID              *string             `db:"camera_id" json:"cameraId"`
	CreatedAt             time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time           `db:"updated_at" json:"updatedAt"`
}

// Price converts the stored decimal into a plain number for presentation.
func (h Housing) Price() *float64 {
	if !h.PriceAmount.Valid {
		return nil
	}
	f := h.PriceAmount.Decimal.InexactFloat64()
	return &f
}

// HousingRow is a housing joined with its manufacturer and primary camera.
type HousingRow struct {
	Housing

	ManufacturerName string  `db:"manufacturer_name"`
	ManufacturerSlug string  `db:"manufacturer_slug"`
	CameraName       *string `db:"camera_name"`
	CameraSlug       *string `db:"camera_slug"`
	CameraBrandID    *string `db:"camera_brand_id"`
	CameraBrandName  *string `db:"camera_brand_name"`
	CameraBrandSlug  *string `db:"camera_brand_slug"`
}

// Compatibility links a housing to an additional camera it fits.
type Compatibility struct {
	HousingID     string  `db:"housing_id" json:"-"`
	CameraID      string  `db:"camera_id" json:"cameraId"`
	IsRecommended bool    `db:"is_recommended" json:"isRecommended"`
	Notes         *string `db:"notes" json:"notes"`

	CameraName      string `db:"camera_name" json:"-"`
	CameraSlug      string `db:"camera_slug" json:"-"`
	CameraBrandID   string `db:"camera_brand_id" json:"-"`
	CameraBrandName string `db:"camera_brand_name" json:"-"`
	CameraBrandSlug string `db:"camera_brand_slug" json:"-"`
}

// CameraRef is a camera with its brand, as shown next to a housing.
type CameraRef struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Slug  string              `json:"slug"`
	Brand ManufacturerSummary `json:"brand"`
}

// FullName is the brand-qualified display name, e.g. "Nikon Z8".
func (c CameraRef) FullName() string {
	return c.Brand.Name + " " + c.Name
}

// CompatibilityView is a compatibility entry ready for presentation.
type CompatibilityView struct {
	Camera        CameraRef `json:"camera"`
	IsRecommended bool      `json:"isRecommended"`
	Notes         *string   `json:"notes"`
}

// HousingImages holds the conventional image locations of a housing.
type HousingImages struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Fallback string `json:"fallback"`
}

// HousingView is the presentation form of a housing: prices are plain
// numbers, relations are embedded and review aggregates are computed.
type HousingView struct {
	ID            string              `json:"id"`
	Model         string              `json:"model"`
	Name          string              `json:"name"`
	Slug          string              `json:"slug"`
	Description   *string             `json:"description"`
	PriceAmount   *float64            `json:"priceAmount"`
	PriceCurrency string              `json:"priceCurrency"`
	DepthRating   *string             `json:"depthRating"`
	Material      *string             `json:"material"`
	Category      *string             `json:"category"`
	InStock       bool                `json:"inStock"`
	IsActive      bool                `json:"isActive"`
	Manufacturer  ManufacturerSummary `json:"manufacturer"`
	Camera        *CameraRef          `json:"camera"`
	Compatibility []CompatibilityView `json:"compatibility"`
	AverageRating *float64            `json:"averageRating"`
	ReviewCount   int                 `json:"reviewCount"`
	URL           string              `json:"url"`
	Images        HousingImages       `json:"images"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// ToView converts a joined row into its presentation form. Compatibility,
// reviews, URL and images are filled in by the caller.
func (r HousingRow) ToView() HousingView {
	v := HousingView{
		ID:            r.ID,
		Model:         r.Model,
		Name:          r.Name,
		Slug:          r.Slug,
		Description:   r.Description,
		PriceAmount:   r.Price(),
		PriceCurrency: r.PriceCurrency,
		DepthRating:   r.DepthRating,
		Material:      r.Material,
		Category:      r.Category,
		InStock:       r.InStock,
		IsActive:      r.IsActive,
		Manufacturer: ManufacturerSummary{
			ID:   r.HousingManufacturerID,
			Name: r.ManufacturerName,
			Slug: r.ManufacturerSlug,
		},
		Compatibility: []CompatibilityView{},
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.CameraID != nil && r.CameraName != nil {
		v.Camera = &CameraRef{
			ID:   *r.CameraID,
			Name: *r.CameraName,
			Slug: deref(r.CameraSlug),
			Brand: ManufacturerSummary{
				ID:   deref(r.CameraBrandID),
				Name: deref(r.CameraBrandName),
				Slug: deref(r.CameraBrandSlug),
			},
		}
	}
	return v
}

// View converts a compatibility row into its presentation form.
func (c Compatibility) View() CompatibilityView {
	return CompatibilityView{
		Camera: CameraRef{
			ID:   c.CameraID,
			Name: c.CameraName,
			Slug: c.CameraSlug,
			Brand: ManufacturerSummary{
				ID:   c.CameraBrandID,
				Name: c.CameraBrandName,
				Slug: c.CameraBrandSlug,
			},
		},
		IsRecommended: c.IsRecommended,
		Notes:         c.Notes,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
