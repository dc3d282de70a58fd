package models

import "time"

// Review is a customer rating of a housing. Ratings are aggregated at query
// time and never stored on the housing itself.
type Review struct {
	ID        string    `db:"id" json:"id"`
	HousingID string    `db:"housing_id" json:"housingId"`
	Rating    int       `db:"rating" json:"rating"`
	Title     *string   `db:"title" json:"title,omitempty"`
	Body      *string   `db:"body" json:"body,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ReviewSummary holds the aggregate rating of one housing.
// AverageRating is nil when the housing has no reviews.
type ReviewSummary struct {
	AverageRating *float64 `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
}

// SummarizeRatings computes the arithmetic mean and count of ratings.
func SummarizeRatings(ratings []int) ReviewSummary {
	if len(ratings) == 0 {
		return ReviewSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return ReviewSummary{AverageRating: &avg, ReviewCount: len(ratings)}
}
