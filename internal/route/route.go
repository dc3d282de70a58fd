// Package route builds canonical catalog paths from persisted slugs.
// Slugs are never derived from display names here; callers pass the values
// stored on the records.
package route

import "strings"

// FallbackImage is served when a housing image is missing.
const FallbackImage = "/housings/fallback.png"

// Image kinds available for a housing.
const (
	ImageFront = "front"
	ImageBack  = "back"
)

// HousingIndex is the path of the filterable housing listing.
const HousingIndex = "/housings"

// Manufacturer returns the listing path of a housing manufacturer.
func Manufacturer(manufacturerSlug string) string {
	return HousingIndex + "/" + manufacturerSlug
}

// Housing returns the detail path of a housing.
func Housing(manufacturerSlug, housingSlug string) string {
	return HousingIndex + "/" + manufacturerSlug + "/" + housingSlug
}

// ParseLegacy splits a path used before listings moved under /housings,
// either /<manufacturer> or /<manufacturer>/<housing>. housing is empty for
// the first form.
func ParseLegacy(path string) (manufacturer, housing string, ok bool) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) > 2 || segments[0] == "" {
		return "", "", false
	}
	for _, seg := range segments {
		if seg == "" {
			return "", "", false
		}
	}
	manufacturer = segments[0]
	if len(segments) == 2 {
		housing = segments[1]
	}
	return manufacturer, housing, true
}

// CameraManufacturer returns the listing path of a camera brand.
func CameraManufacturer(brandSlug string) string {
	return "/cameras/" + brandSlug
}

// HousingImage returns the conventional image path of a housing, or the
// fallback image when either slug is missing. Unknown kinds are treated as front.
func HousingImage(manufacturerSlug, housingSlug, kind string) string {
	if manufacturerSlug == "" || housingSlug == "" {
		return FallbackImage
	}
	if kind != ImageBack {
		kind = ImageFront
	}
	return Housing(manufacturerSlug, housingSlug) + "/" + kind + ".webp"
}

// ParseImageFile maps "front.webp" or "back.webp" to its image kind.
func ParseImageFile(name string) (string, bool) {
	kind, ok := strings.CutSuffix(name, ".webp")
	if !ok || (kind != ImageFront && kind != ImageBack) {
		return "", false
	}
	return kind, true
}
