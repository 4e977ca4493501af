package rtr

import (
	"sort"
	"sync"
)

// Cache holds compiled patterns keyed by their source text,
// so each distinct pattern is compiled only once.
// A Cache is safe for concurrent use.
type Cache struct {
	mu       sync.RWMutex
	patterns map[string]*Pattern
	compiles int
}

// NewCache creates an empty pattern cache.
// It is important to use this function when a new cache is needed
func NewCache() *Cache {
	return &Cache{
		patterns: make(map[string]*Pattern, 16),
	}
}

// Get returns the compiled pattern, compiling and storing it on first use.
// Compile errors are returned as-is and are not cached.
func (c *Cache) Get(pattern string) (*Pattern, error) {
	c.mu.RLock()
	p, ok := c.patterns[pattern]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have compiled it in the meantime
	if p, ok = c.patterns[pattern]; ok {
		return p, nil
	}

	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	c.patterns[pattern] = p
	c.compiles++
	return p, nil
}

// Compiles returns the number of patterns compiled through this cache.
func (c *Cache) Compiles() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.compiles
}

// Patterns lists the cached pattern sources in sorted order.
func (c *Cache) Patterns() (patterns []string) {
	c.mu.RLock()
	for k := range c.patterns {
		patterns = append(patterns, k)
	}
	c.mu.RUnlock()

	sort.Strings(patterns)
	return
}
