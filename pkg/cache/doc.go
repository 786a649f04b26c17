// Package cache provides a bounded in-memory LRU cache for values that are
// expensive to derive from hot keys, such as parsed user agents.
//
//	c := cache.NewLRU[string, platform.Info](4096)
//	info := c.GetOrCompute(ua, platform.Parse)
//
// All methods are safe for concurrent use. Stats reports hit and miss
// counters since creation.
package cache
