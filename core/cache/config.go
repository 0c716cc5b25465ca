package cache

// Config holds configuration for the in-process read-through cache.
type Config struct {
	// MaxEntries is the maximum number of cached entries (LRU bound).
	MaxEntries int `mapstructure:"max_entries" default:"100"`
	// TTLSeconds is the time-to-live of an entry after it is stored.
	// Entries are never invalidated on write; they age out.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"600"`
}
