package rroute

import "github.com/rohanthewiz/rroute/core/ids"

// MatchCache records, per parent fragment, the child pattern that claimed
// the match during the current resolution pass.
// A cache belongs to exactly one pass and is not safe for concurrent use.
type MatchCache struct {
	matches map[ids.ID]string
}

// NewMatchCache creates an empty cache for a new pass.
func NewMatchCache() *MatchCache {
	return &MatchCache{matches: make(map[ids.ID]string)}
}

// Get returns the pattern registered under the parent id, if any.
func (c *MatchCache) Get(parentID ids.ID) (string, bool) {
	pattern, ok := c.matches[parentID]
	return pattern, ok
}

// Add registers the pattern under the parent id, replacing any previous entry.
func (c *MatchCache) Add(parentID ids.ID, pattern string) {
	c.matches[parentID] = pattern
}

// Len returns the number of parents with a registered match.
func (c *MatchCache) Len() int {
	return len(c.matches)
}
