package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/underwaterhousings/catalog_api/internal/models"
)

const housingManufacturerColumns = `m.id, m.name, m.slug, m.description, m.created_at, m.updated_at`

// HousingManufacturerRepository handles database operations for housing manufacturers.
type HousingManufacturerRepository struct {
	db *sqlx.DB
}

// NewHousingManufacturerRepository creates a new HousingManufacturerRepository.
func NewHousingManufacturerRepository(db *sqlx.DB) *HousingManufacturerRepository {
	return &HousingManufacturerRepository{db: db}
}

// List returns all manufacturers ordered by name, each with its housing count.
func (r *HousingManufacturerRepository) List(ctx context.Context) ([]models.HousingManufacturer, error) {
	query := `SELECT ` + housingManufacturerColumns + `,
	                 (SELECT COUNT(*) FROM housings h WHERE h.housing_manufacturer_id = m.id) AS housing_count
	          FROM housing_manufacturers m
	          ORDER BY m.name`

	out := []models.HousingManufacturer{}
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSimple returns the navigation projection of all manufacturers.
func (r *HousingManufacturerRepository) ListSimple(ctx context.Context) ([]models.ManufacturerSummary, error) {
	const query = `SELECT id, name, slug FROM housing_manufacturers ORDER BY name`

	out := []models.ManufacturerSummary{}
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HousingManufacturerRepository) getBy(ctx context.Context, where string, arg any) (*models.HousingManufacturer, error) {
	query := r.db.Rebind(`SELECT ` + housingManufacturerColumns + `,
	                 (SELECT COUNT(*) FROM housings h WHERE h.housing_manufacturer_id = m.id) AS housing_count
	          FROM housing_manufacturers m WHERE ` + where)

	var m models.HousingManufacturer
	if err := r.db.GetContext(ctx, &m, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetByID returns the manufacturer with the given id, or nil when it does not exist.
func (r *HousingManufacturerRepository) GetByID(ctx context.Context, id string) (*models.HousingManufacturer, error) {
	return r.getBy(ctx, "m.id = ?", id)
}

// GetBySlug returns the manufacturer with the given slug, or nil when it does not exist.
func (r *HousingManufacturerRepository) GetBySlug(ctx context.Context, slug string) (*models.HousingManufacturer, error) {
	return r.getBy(ctx, "m.slug = ?", slug)
}

// SlugExists reports whether another manufacturer already uses slug.
// excludeID is ignored when empty.
func (r *HousingManufacturerRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM housing_manufacturers WHERE slug = ? AND id <> ?`)

	var n int
	if err := r.db.GetContext(ctx, &n, query, slug, excludeID); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts m. ID and timestamps must already be set.
func (r *HousingManufacturerRepository) Create(ctx context.Context, m *models.HousingManufacturer) error {
	query := r.db.Rebind(`INSERT INTO housing_manufacturers (id, name, slug, description, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Slug, m.Description, m.CreatedAt, m.UpdatedAt)
	return err
}

// Update overwrites the editable fields of m. It reports false when no row matched.
func (r *HousingManufacturerRepository) Update(ctx context.Context, m *models.HousingManufacturer) (bool, error) {
	query := r.db.Rebind(`UPDATE housing_manufacturers
	          SET name = ?, slug = ?, description = ?, updated_at = ?
	          WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, m.Name, m.Slug, m.Description, m.UpdatedAt, m.ID)
	return affected(res, err)
}

// Delete removes the manufacturer. It reports false when no row matched.
func (r *HousingManufacturerRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM housing_manufacturers WHERE id = ?`), id)
	return affected(res, err)
}

// CountHousings returns the number of housings owned by the manufacturer.
func (r *HousingManufacturerRepository) CountHousings(ctx context.Context, id string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, r.db.Rebind(`SELECT COUNT(*) FROM housings WHERE housing_manufacturer_id = ?`), id)
	return n, err
}

func affected(res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
