// Package cache provides a small generic LRU cache for derived render data
// that is expensive to rebuild and shared between render calls, such as
// noise gradient lookup tables.
//
//	c := cache.New[string, []uint8](32)
//	table := c.GetOrCreate(key, build)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
