// Package cache provides a small in-process read-through cache.
//
// It wraps hashicorp/golang-lru's expirable LRU with a get-or-compute
// helper guarded by singleflight, so a burst of misses for the same key
// produces one database query instead of many.
//
// Entries age out by TTL only. The performer endpoints deliberately do not
// invalidate on write; stale reads inside the TTL window are accepted.
package cache
