package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/underwaterhousings/catalog_api/internal/models"
)

const cameraSelect = `SELECT c.id, c.name, c.slug, c.camera_manufacturer_id, c.created_at, c.updated_at,
	       b.name AS brand_name, b.slug AS brand_slug
	FROM cameras c
	JOIN camera_manufacturers b ON b.id = c.camera_manufacturer_id`

// CameraRepository handles database operations for cameras.
// Every read joins the owning brand.
type CameraRepository struct {
	db *sqlx.DB
}

// NewCameraRepository creates a new CameraRepository.
func NewCameraRepository(db *sqlx.DB) *CameraRepository {
	return &CameraRepository{db: db}
}

func (r *CameraRepository) selectCameras(ctx context.Context, query string, args ...any) ([]models.Camera, error) {
	var rows []models.Camera
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	out := make([]models.Camera, 0, len(rows))
	for _, c := range rows {
		out = append(out, c.WithBrand())
	}
	return out, nil
}

// List returns all cameras ordered by name.
func (r *CameraRepository) List(ctx context.Context) ([]models.Camera, error) {
	return r.selectCameras(ctx, cameraSelect+` ORDER BY c.name, b.name`)
}

// ListByManufacturer returns the cameras of one brand ordered by name.
func (r *CameraRepository) ListByManufacturer(ctx context.Context, manufacturerID string) ([]models.Camera, error) {
	return r.selectCameras(ctx, cameraSelect+` WHERE c.camera_manufacturer_id = ? ORDER BY c.name`, manufacturerID)
}

// GetByID returns the camera with the given id, or nil when it does not exist.
func (r *CameraRepository) GetByID(ctx context.Context, id string) (*models.Camera, error) {
	var c models.Camera
	if err := r.db.GetContext(ctx, &c, r.db.Rebind(cameraSelect+` WHERE c.id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c = c.WithBrand()
	return &c, nil
}

// SlugExists reports whether another camera of the brand already uses slug.
func (r *CameraRepository) SlugExists(ctx context.Context, manufacturerID, slug, excludeID string) (bool, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM cameras
	          WHERE camera_manufacturer_id = ? AND slug = ? AND id <> ?`)

	var n int
	err := r.db.GetContext(ctx, &n, query, manufacturerID, slug, excludeID)
	return n > 0, err
}

// Create inserts c. ID and timestamps must already be set.
func (r *CameraRepository) Create(ctx context.Context, c *models.Camera) error {
	query := r.db.Rebind(`INSERT INTO cameras (id, name, slug, camera_manufacturer_id, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Slug, c.CameraManufacturerID, c.CreatedAt, c.UpdatedAt)
	return err
}

// Update overwrites the editable fields of c. It reports false when no row matched.
func (r *CameraRepository) Update(ctx context.Context, c *models.Camera) (bool, error) {
	query := r.db.Rebind(`UPDATE cameras
	          SET name = ?, slug = ?, camera_manufacturer_id = ?, updated_at = ?
	          WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, c.Name, c.Slug, c.CameraManufacturerID, c.UpdatedAt, c.ID)
	return affected(res, err)
}

// Delete removes the camera. It reports false when no row matched.
func (r *CameraRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM cameras WHERE id = ?`), id)
	return affected(res, err)
}

// CountHousings returns the number of distinct housings that reference the
// camera, either as their primary camera or through a compatibility entry.
func (r *CameraRepository) CountHousings(ctx context.Context, id string) (int, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM housings h
	          WHERE h.camera_id = ?
	             OR EXISTS (SELECT 1 FROM housing_compatibility hc WHERE hc.housing_id = h.id AND hc.camera_id = ?)`)

	var n int
	err := r.db.GetContext(ctx, &n, query, id, id)
	return n, err
}
