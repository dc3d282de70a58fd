package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/underwaterhousings/catalog_api/internal/models"
)

// ReviewRepository reads customer reviews for rating aggregation.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// RatingsByHousing returns the ratings of each given housing keyed by housing id.
// Housings without reviews are absent from the map.
func (r *ReviewRepository) RatingsByHousing(ctx context.Context, housingIDs []string) (map[string][]int, error) {
	out := make(map[string][]int)
	if len(housingIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`SELECT housing_id, rating FROM reviews WHERE housing_id IN (?)`, housingIDs)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			housingID string
			rating    int
		)
		if err := rows.Scan(&housingID, &rating); err != nil {
			return nil, err
		}
		out[housingID] = append(out[housingID], rating)
	}
	return out, rows.Err()
}

// Create stores a review. ID and CreatedAt must already be set.
func (r *ReviewRepository) Create(ctx context.Context, rv *models.Review) error {
	query := r.db.Rebind(`INSERT INTO reviews (id, housing_id, rating, title, body, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query, rv.ID, rv.HousingID, rv.Rating, rv.Title, rv.Body, rv.CreatedAt)
	return err
}
