package models

import "time"

// HousingManufacturer is a company producing underwater housings.
type HousingManufacturer struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`

	// Populated via subquery on listings.
	HousingCount int `db:"housing_count" json:"housingCount"`
}

// CameraManufacturer is a camera brand a housing can be built for.
// Inactive brands are hidden from the public navigation.
type CameraManufacturer struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	CameraCount int      `db:"camera_count" json:"cameraCount"`
	Cameras     []Camera `db:"-" json:"cameras,omitempty"`
	URL         string   `db:"-" json:"url,omitempty"`
}

// ManufacturerSummary is the navigation projection of either manufacturer kind.
type ManufacturerSummary struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
}

// Summary projects the manufacturer for navigation.
func (m HousingManufacturer) Summary() ManufacturerSummary {
	return ManufacturerSummary{ID: m.ID, Name: m.Name, Slug: m.Slug}
}

// Summary projects the brand for navigation.
func (m CameraManufacturer) Summary() ManufacturerSummary {
	return ManufacturerSummary{ID: m.ID, Name: m.Name, Slug: m.Slug}
}
