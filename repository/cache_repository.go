package repository

import "time"

// CacheRepository is the storage boundary for memoized score results.
// A ttl of zero means the entry never expires.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
