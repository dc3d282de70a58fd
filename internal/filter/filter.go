// Package filter evaluates catalog housings against a browsing filter state.
// Evaluation is a synchronous pass over the full list held in memory.
package filter

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/underwaterhousings/catalog_api/internal/models"
)

// Default price bounds. A price constraint applies only when the pair differs.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 10000
)

// State is the set of browsing filters. Every field is inactive at its
// default value and then contributes no constraint.
//
// MaxDepth is a lower bound despite its name: a housing matches when its
// rated depth is at least MaxDepth meters ("or deeper").
type State struct {
	CompatibleCamera string  `json:"compatibleCamera"`
	MaxDepth         int     `json:"maxDepth"`
	PriceMin         float64 `json:"priceMin"`
	PriceMax         float64 `json:"priceMax"`
	Material         string  `json:"material"`
	Manufacturer     string  `json:"manufacturer"`
}

// Default returns the state with every filter inactive.
func Default() State {
	return State{PriceMin: DefaultPriceMin, PriceMax: DefaultPriceMax}
}

// PriceActive reports whether the price bounds differ from the defaults.
func (s State) PriceActive() bool {
	return s.PriceMin != DefaultPriceMin || s.PriceMax != DefaultPriceMax
}

// IsActive reports whether any filter constrains the result.
func (s State) IsActive() bool {
	return s.CompatibleCamera != "" ||
		s.MaxDepth > 0 ||
		s.PriceActive() ||
		s.Material != "" ||
		s.Manufacturer != ""
}

// Matches reports whether h satisfies every active filter.
func (s State) Matches(h models.HousingView) bool {
	// Housings without a compatible camera are not excluded by the camera filter.
	if s.CompatibleCamera != "" && h.Camera != nil {
		if !strings.Contains(strings.ToLower(h.Camera.FullName()), strings.ToLower(s.CompatibleCamera)) {
			return false
		}
	}

	if s.MaxDepth > 0 && models.ParseDepth(h.DepthRating) < s.MaxDepth {
		return false
	}

	// Unpriced housings are never excluded by the price range.
	if h.PriceAmount != nil && *h.PriceAmount != 0 && s.PriceActive() {
		if *h.PriceAmount < s.PriceMin || *h.PriceAmount > s.PriceMax {
			return false
		}
	}

	if s.Material != "" && (h.Material == nil || *h.Material != s.Material) {
		return false
	}

	if s.Manufacturer != "" && h.Manufacturer.Name != s.Manufacturer {
		return false
	}

	return true
}

// Apply returns the housings matching s, preserving their order. The input
// slice is never modified.
func Apply(housings []models.HousingView, s State) []models.HousingView {
	return lo.Filter(housings, func(h models.HousingView, _ int) bool {
		return s.Matches(h)
	})
}

// Options are the distinct values offered by the filter inputs.
type Options struct {
	Materials     []string `json:"materials"`
	DepthRatings  []string `json:"depthRatings"`
	Cameras       []string `json:"cameras"`
	Manufacturers []string `json:"manufacturers"`
	DepthSteps    []int    `json:"depthSteps"`
}

// DepthSteps are the selectable depth thresholds in meters; 0 means any depth.
var DepthSteps = []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// BuildOptions collects the distinct non-empty values present in housings.
func BuildOptions(housings []models.HousingView) Options {
	return Options{
		Materials: distinct(housings, func(h models.HousingView) string {
			return deref(h.Material)
		}),
		DepthRatings: distinct(housings, func(h models.HousingView) string {
			return deref(h.DepthRating)
		}),
		Cameras: distinct(housings, func(h models.HousingView) string {
			if h.Camera == nil {
				return ""
			}
			return h.Camera.FullName()
		}),
		Manufacturers: distinct(housings, func(h models.HousingView) string {
			return h.Manufacturer.Name
		}),
		DepthSteps: DepthSteps,
	}
}

func distinct(housings []models.HousingView, value func(models.HousingView) string) []string {
	values := lo.Uniq(lo.FilterMap(housings, func(h models.HousingView, _ int) (string, bool) {
		v := value(h)
		return v, v != ""
	}))
	slices.Sort(values)
	return values
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FromQuery reads a state from URL query parameters. Missing or malformed
// values keep their defaults.
func FromQuery(q url.Values) State {
	s := Default()
	s.CompatibleCamera = strings.TrimSpace(q.Get("camera"))
	s.Material = q.Get("material")
	s.Manufacturer = q.Get("manufacturer")

	if v, err := strconv.Atoi(q.Get("maxDepth")); err == nil && v > 0 {
		s.MaxDepth = v
	}
	if v, err := strconv.ParseFloat(q.Get("priceMin"), 64); err == nil && v >= 0 {
		s.PriceMin = v
	}
	if v, err := strconv.ParseFloat(q.Get("priceMax"), 64); err == nil && v >= 0 {
		s.PriceMax = v
	}
	return s
}
