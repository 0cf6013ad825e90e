package config

// CacheConfig holds settings for the persistent result cache.
type CacheConfig struct {
	// Enabled turns the cache on
	Enabled bool

	// Dir is the database directory; empty means the platform default
	Dir string

	// Refresh ignores stored results and overwrites them
	Refresh bool
}

// NewCacheConfig creates a CacheConfig with default values.
// The cache is off by default.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{}
}
