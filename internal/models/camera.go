package models

import "time"

// Camera is a camera model a housing is built to fit.
type Camera struct {
	ID                   string    `db:"id" json:"id"`
	Name                 string    `db:"name" json:"name"`
	Slug                 string    `db:"slug" json:"slug"`
	CameraManufacturerID string    `db:"camera_manufacturer_id" json:"cameraManufacturerId"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `db:"updated_at" json:"updatedAt"`

	// Joined brand columns.
	BrandName string `db:"brand_name" json:"-"`
	BrandSlug string `db:"brand_slug" json:"-"`

	Brand *ManufacturerSummary `db:"-" json:"brand,omitempty"`
}

// FullName is the brand-qualified display name, e.g. "Nikon Z8".
func (c Camera) FullName() string {
	if c.Brand != nil {
		return c.Brand.Name + " " + c.Name
	}
	if c.BrandName != "" {
		return c.BrandName + " " + c.Name
	}
	return c.Name
}

// WithBrand fills Brand from the joined brand columns.
func (c Camera) WithBrand() Camera {
	if c.Brand == nil && c.BrandName != "" {
		c.Brand = &ManufacturerSummary{ID: c.CameraManufacturerID, Name: c.BrandName, Slug: c.BrandSlug}
	}
	return c
}
