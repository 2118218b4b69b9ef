package repository

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// CacheKey derives a stable key from the JSON encoding of v.
// Struct fields encode in declaration order, so equal inputs give equal keys.
func CacheKey(prefix string, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	return fmt.Sprintf("%s:%016x", prefix, xxhash.Sum64(b)), nil
}
