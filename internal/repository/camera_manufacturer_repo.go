package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/underwaterhousings/catalog_api/internal/models"
)

const cameraManufacturerColumns = `m.id, m.name, m.slug, m.is_active, m.created_at, m.updated_at,
	(SELECT COUNT(*) FROM cameras c WHERE c.camera_manufacturer_id = m.id) AS camera_count`

// CameraManufacturerRepository handles database operations for camera brands.
type CameraManufacturerRepository struct {
	db *sqlx.DB
}

// NewCameraManufacturerRepository creates a new CameraManufacturerRepository.
func NewCameraManufacturerRepository(db *sqlx.DB) *CameraManufacturerRepository {
	return &CameraManufacturerRepository{db: db}
}

// List returns brands ordered by name. When activeOnly is set, inactive brands are skipped.
func (r *CameraManufacturerRepository) List(ctx context.Context, activeOnly bool) ([]models.CameraManufacturer, error) {
	query := `SELECT ` + cameraManufacturerColumns + ` FROM camera_manufacturers m`
	if activeOnly {
		query += ` WHERE m.is_active = TRUE`
	}
	query += ` ORDER BY m.name`

	out := []models.CameraManufacturer{}
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSimple returns the navigation projection of brands ordered by name.
func (r *CameraManufacturerRepository) ListSimple(ctx context.Context, activeOnly bool) ([]models.ManufacturerSummary, error) {
	query := `SELECT id, name, slug FROM camera_manufacturers`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	out := []models.ManufacturerSummary{}
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CameraManufacturerRepository) getBy(ctx context.Context, where string, arg any) (*models.CameraManufacturer, error) {
	query := r.db.Rebind(`SELECT ` + cameraManufacturerColumns + ` FROM camera_manufacturers m WHERE ` + where)

	var m models.CameraManufacturer
	if err := r.db.GetContext(ctx, &m, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetByID returns the brand with the given id, or nil when it does not exist.
func (r *CameraManufacturerRepository) GetByID(ctx context.Context, id string) (*models.CameraManufacturer, error) {
	return r.getBy(ctx, "m.id = ?", id)
}

// GetBySlug returns the brand with the given slug, or nil when it does not exist.
func (r *CameraManufacturerRepository) GetBySlug(ctx context.Context, slug string) (*models.CameraManufacturer, error) {
	return r.getBy(ctx, "m.slug = ?", slug)
}

// SlugExists reports whether another brand already uses slug.
func (r *CameraManufacturerRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		r.db.Rebind(`SELECT COUNT(*) FROM camera_manufacturers WHERE slug = ? AND id <> ?`), slug, excludeID)
	return n > 0, err
}

// Create inserts m. ID and timestamps must already be set.
func (r *CameraManufacturerRepository) Create(ctx context.Context, m *models.CameraManufacturer) error {
	query := r.db.Rebind(`INSERT INTO camera_manufacturers (id, name, slug, is_active, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Slug, m.IsActive, m.CreatedAt, m.UpdatedAt)
	return err
}

// Update overwrites the editable fields of m. It reports false when no row matched.
func (r *CameraManufacturerRepository) Update(ctx context.Context, m *models.CameraManufacturer) (bool, error) {
	query := r.db.Rebind(`UPDATE camera_manufacturers
	          SET name = ?, slug = ?, is_active = ?, updated_at = ?
	          WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, m.Name, m.Slug, m.IsActive, m.UpdatedAt, m.ID)
	return affected(res, err)
}

// Delete removes the brand. It reports false when no row matched.
func (r *CameraManufacturerRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM camera_manufacturers WHERE id = ?`), id)
	return affected(res, err)
}

// CountCameras returns the number of cameras made by the brand.
func (r *CameraManufacturerRepository) CountCameras(ctx context.Context, id string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, r.db.Rebind(`SELECT COUNT(*) FROM cameras WHERE camera_manufacturer_id = ?`), id)
	return n, err
}
