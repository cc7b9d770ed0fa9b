// Package cache provides the sharded LRU cache shared by the font provider
// and the layout cache.
//
//	c := cache.New[string, int](256, cache.StringHasher)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Keys are spread over 16 shards, each guarded by its own mutex and evicted
// in least-recently-used order once the shard is full. A Sharded cache is
// safe for concurrent use and must not be copied after creation.
package cache
