package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/underwaterhousings/catalog_api/internal/models"
)

const housingSelect = `SELECT h.id, h.model, h.name, h.slug, h.description, h.price_amount, h.price_currency,
	       h.depth_rating, h.material, h.category, h.in_stock, h.is_active,
	       h.housing_manufacturer_id, h.camera_id, h.created_at, h.updated_at,
	       m.name AS manufacturer_name, m.slug AS manufacturer_slug,
	       c.name AS camera_name, c.slug AS camera_slug,
	       b.id AS camera_brand_id, b.name AS camera_brand_name, b.slug AS camera_brand_slug
	FROM housings h
	JOIN housing_manufacturers m ON m.id = h.housing_manufacturer_id
	LEFT JOIN cameras c ON c.id = h.camera_id
	LEFT JOIN camera_manufacturers b ON b.id = c.camera_manufacturer_id`

// HousingOrder selects the ordering of a housing listing.
type HousingOrder int

const (
	// OrderByManufacturer sorts by manufacturer name, then housing name.
	OrderByManufacturer HousingOrder = iota
	// OrderByName sorts by housing name.
	OrderByName
	// OrderByModel sorts by model code.
	OrderByModel
)

// HousingFilter narrows a housing listing. Zero values apply no constraint.
type HousingFilter struct {
	ManufacturerSlug string
	ManufacturerID   string
	// CameraManufacturerID keeps housings whose primary or compatible
	// camera is made by the brand.
	CameraManufacturerID string
	Category             string
	InStockOnly          bool
	MaxPrice             *float64
	ActiveOnly           bool
	Order                HousingOrder
	Limit                int
}

func (f HousingFilter) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.ActiveOnly {
		conds = append(conds, "h.is_active = TRUE")
	}
	if f.ManufacturerSlug != "" {
		conds = append(conds, "m.slug = ?")
		args = append(args, f.ManufacturerSlug)
	}
	if f.ManufacturerID != "" {
		conds = append(conds, "h.housing_manufacturer_id = ?")
		args = append(args, f.ManufacturerID)
	}
	if f.CameraManufacturerID != "" {
		conds = append(conds, `(c.camera_manufacturer_id = ? OR EXISTS (
			SELECT 1 FROM housing_compatibility hc
			JOIN cameras cc ON cc.id = hc.camera_id
			WHERE hc.housing_id = h.id AND cc.camera_manufacturer_id = ?))`)
		args = append(args, f.CameraManufacturerID, f.CameraManufacturerID)
	}
	if f.Category != "" {
		conds = append(conds, "h.category = ?")
		args = append(args, f.Category)
	}
	if f.InStockOnly {
		conds = append(conds, "h.in_stock = TRUE")
	}
	if f.MaxPrice != nil {
		conds = append(conds, "h.price_amount <= ?")
		args = append(args, *f.MaxPrice)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (f HousingFilter) orderBy() string {
	switch f.Order {
	case OrderByName:
		return " ORDER BY h.name, h.model"
	case OrderByModel:
		return " ORDER BY h.model, h.name"
	default:
		return " ORDER BY m.name, h.name"
	}
}

// HousingRepository handles database operations for housings and their
// compatibility entries.
type HousingRepository struct {
	db *sqlx.DB
}

// NewHousingRepository creates a new HousingRepository.
func NewHousingRepository(db *sqlx.DB) *HousingRepository {
	return &HousingRepository{db: db}
}

// List returns housings joined with manufacturer, primary camera and brand.
func (r *HousingRepository) List(ctx context.Context, f HousingFilter) ([]models.HousingRow, error) {
	where, args := f.where()
	query := housingSelect + where + f.orderBy()
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	out := []models.HousingRow{}
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HousingRepository) getOne(ctx context.Context, where string, args ...any) (*models.HousingRow, error) {
	var h models.HousingRow
	if err := r.db.GetContext(ctx, &h, r.db.Rebind(housingSelect+" WHERE "+where), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

// GetByID returns the housing with the given id, or nil when it does not exist.
func (r *HousingRepository) GetByID(ctx context.Context, id string) (*models.HousingRow, error) {
	return r.getOne(ctx, "h.id = ?", id)
}

// GetBySlugs resolves a housing by its manufacturer slug and its own slug.
func (r *HousingRepository) GetBySlugs(ctx context.Context, manufacturerSlug, housingSlug string) (*models.HousingRow, error) {
	return r.getOne(ctx, "m.slug = ? AND h.slug = ?", manufacturerSlug, housingSlug)
}

// SlugExists reports whether another housing of the manufacturer already uses slug.
func (r *HousingRepository) SlugExists(ctx context.Context, manufacturerID, slug, excludeID string) (bool, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM housings
	          WHERE housing_manufacturer_id = ? AND slug = ? AND id <> ?`)

	var n int
	err := r.db.GetContext(ctx, &n, query, manufacturerID, slug, excludeID)
	return n > 0, err
}

// Create inserts h together with its compatibility entries in one transaction.
func (r *HousingRepository) Create(ctx context.Context, h *models.Housing, compat []models.Compatibility) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := tx.Rebind(`INSERT INTO housings (id, model, name, slug, description, price_amount, price_currency,
	              depth_rating, material, category, in_stock, is_active,
	              housing_manufacturer_id, camera_id, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	if _, err := tx.ExecContext(ctx, query,
		h.ID, h.Model, h.Name, h.Slug, h.Description, h.PriceAmount, h.PriceCurrency,
		h.DepthRating, h.Material, h.Category, h.InStock, h.IsActive,
		h.HousingManufacturerID, h.CameraID, h.CreatedAt, h.UpdatedAt,
	); err != nil {
		return err
	}
	if err := insertCompatibility(ctx, tx, h.ID, compat); err != nil {
		return err
	}
	return tx.Commit()
}

// Update overwrites the editable fields of h. A nil compat leaves the
// compatibility entries untouched; a non-nil one replaces them.
// It reports false when no row matched.
func (r *HousingRepository) Update(ctx context.Context, h *models.Housing, compat []models.Compatibility) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	query := tx.Rebind(`UPDATE housings
	          SET model = ?, name = ?, slug = ?, description = ?, price_amount = ?, price_currency = ?,
	              depth_rating = ?, material = ?, category = ?, in_stock = ?, is_active = ?,
	              housing_manufacturer_id = ?, camera_id = ?, updated_at = ?
	          WHERE id = ?`)

	res, err := tx.ExecContext(ctx, query,
		h.Model, h.Name, h.Slug, h.Description, h.PriceAmount, h.PriceCurrency,
		h.DepthRating, h.Material, h.Category, h.InStock, h.IsActive,
		h.HousingManufacturerID, h.CameraID, h.UpdatedAt, h.ID,
	)
	ok, err := affected(res, err)
	if err != nil || !ok {
		return ok, err
	}

	if compat != nil {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM housing_compatibility WHERE housing_id = ?`), h.ID); err != nil {
			return false, err
		}
		if err := insertCompatibility(ctx, tx, h.ID, compat); err != nil {
			return false, err
		}
	}
	return true, tx.Commit()
}

func insertCompatibility(ctx context.Context, tx *sqlx.Tx, housingID string, compat []models.Compatibility) error {
	if len(compat) == 0 {
		return nil
	}
	query := tx.Rebind(`INSERT INTO housing_compatibility (housing_id, camera_id, is_recommended, notes)
	          VALUES (?, ?, ?, ?)`)
	for _, c := range compat {
		if _, err := tx.ExecContext(ctx, query, housingID, c.CameraID, c.IsRecommended, c.Notes); err != nil {
			return fmt.Errorf("insert compatibility %s: %w", c.CameraID, err)
		}
	}
	return nil
}

// Delete removes the housing; compatibility entries and reviews cascade.
// It reports false when no row matched.
func (r *HousingRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM housings WHERE id = ?`), id)
	return affected(res, err)
}

// ListCompatibility returns the compatibility entries of the given housings,
// joined with camera and brand, ordered by brand and camera name.
func (r *HousingRepository) ListCompatibility(ctx context.Context, housingIDs []string) ([]models.Compatibility, error) {
	out := []models.Compatibility{}
	if len(housingIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`SELECT hc.housing_id, hc.camera_id, hc.is_recommended, hc.notes,
	       c.name AS camera_name, c.slug AS camera_slug,
	       b.id AS camera_brand_id, b.name AS camera_brand_name, b.slug AS camera_brand_slug
	FROM housing_compatibility hc
	JOIN cameras c ON c.id = hc.camera_id
	JOIN camera_manufacturers b ON b.id = c.camera_manufacturer_id
	WHERE hc.housing_id IN (?)
	ORDER BY b.name, c.name`, housingIDs)
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return out, nil
}
