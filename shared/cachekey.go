package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"atrium/shared/cache"
	"atrium/shared/constant"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins the prefix and key parts with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return fmt.Sprintf("%s:%s", prefix, strings.Join(parts, ":"))
}

// BuildCacheKeyWithQuery derives a cache key from the prefix plus the JSON
// encoding of the query objects, so distinct filters land on distinct keys.
func BuildCacheKeyWithQuery(prefix string, queries ...any) string {
	parts := make([]string, 0, len(queries))

	for _, query := range queries {
		encoded, err := json.Marshal(query)
		if err != nil {
			log.Error().Err(err).Msg("failed to encode cache key query")

			continue
		}

		parts = append(parts, string(encoded))
	}

	return BuildCacheKey(prefix, parts...)
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
