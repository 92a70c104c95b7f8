// Package cache provides the bounded LRU cache used for decoded assets.
//
//	c := cache.New[string, *g3d.Texture](32)
//	tex, err := c.GetOrLoad(path, func() (*g3d.Texture, error) { ... })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
