package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// now is the clock used for record timestamps.
var now = func() time.Time { return time.Now().UTC() }

// invalidateCatalog drops cached listings after a successful write. A cache
// failure never fails the write; stale entries expire with their TTL.
func invalidateCatalog(ctx context.Context, cache CatalogCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate catalog cache")
	}
}

// optionalText trims s and maps blank text to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
