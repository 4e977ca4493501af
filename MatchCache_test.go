package rroute_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
)

func TestMatchCache(t *testing.T) {
	c := rroute.NewMatchCache()

	_, ok := c.Get("p1")
	assert.False(t, ok)

	c.Add("p1", "/home/messages*")
	got, ok := c.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, got, "/home/messages*")

	c.Add("p1", "/home*")
	got, _ = c.Get("p1")
	assert.Equal(t, got, "/home*")

	c.Add("p2", "")
	got, ok = c.Get("p2")
	assert.True(t, ok)
	assert.Equal(t, got, "")
	assert.Equal(t, c.Len(), 2)
}
