package service

import (
	"context"
	"fmt"

	"github.com/underwaterhousings/catalog_api/internal/models"
	"github.com/underwaterhousings/catalog_api/internal/route"
)

// viewBuilder turns joined housing rows into presentation records: it
// attaches compatibility entries, review aggregates, the canonical URL and
// image paths.
type viewBuilder struct {
	housings HousingRepository
	reviews  ReviewRepository
}

func (b viewBuilder) build(ctx context.Context, rows []models.HousingRow) ([]models.HousingView, error) {
	views := make([]models.HousingView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	compat, err := b.housings.ListCompatibility(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list compatibility: %w", err)
	}
	byHousing := make(map[string][]models.CompatibilityView, len(rows))
	for _, c := range compat {
		byHousing[c.HousingID] = append(byHousing[c.HousingID], c.View())
	}

	ratings := map[string][]int{}
	if b.reviews != nil {
		if ratings, err = b.reviews.RatingsByHousing(ctx, ids); err != nil {
			return nil, fmt.Errorf("load ratings: %w", err)
		}
	}

	for _, r := range rows {
		v := r.ToView()
		if c, ok := byHousing[r.ID]; ok {
			v.Compatibility = c
		}
		summary := models.SummarizeRatings(ratings[r.ID])
		v.AverageRating = summary.AverageRating
		v.ReviewCount = summary.ReviewCount
		v.URL = route.Housing(r.ManufacturerSlug, r.Slug)
		v.Images = models.HousingImages{
			Front:    route.HousingImage(r.ManufacturerSlug, r.Slug, route.ImageFront),
			Back:     route.HousingImage(r.ManufacturerSlug, r.Slug, route.ImageBack),
			Fallback: route.FallbackImage,
		}
		views = append(views, v)
	}
	return views, nil
}

func (b viewBuilder) buildOne(ctx context.Context, row *models.HousingRow) (*models.HousingView, error) {
	views, err := b.build(ctx, []models.HousingRow{*row})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
