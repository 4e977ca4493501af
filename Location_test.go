package rroute_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
)

func TestParseLocation(t *testing.T) {
	loc := rroute.ParseLocation("/home/messages?test=ing&b=2")
	assert.Equal(t, loc.Pathname, "/home/messages")
	assert.Equal(t, loc.Search, "?test=ing&b=2")
	if diff := cmp.Diff(rroute.Query{"test": "ing", "b": "2"}, loc.Query); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}

	loc = rroute.ParseLocation("path/with/nested/routes")
	assert.Equal(t, loc.Pathname, "path/with/nested/routes")
	assert.Equal(t, loc.Search, "")
	assert.Equal(t, len(loc.Query), 0)
}

func TestQueryEncodeIsSorted(t *testing.T) {
	q := rroute.Query{"what": "do", "persist": "pls", "a b": "c&d"}
	assert.Equal(t, q.Encode(), "a+b=c%26d&persist=pls&what=do")
	assert.Equal(t, rroute.Query{}.Search(), "")
	assert.Equal(t, rroute.Query{"key": "value"}.Search(), "?key=value")
}

func TestQueryMerge(t *testing.T) {
	defaults := rroute.Query{"persist": "pls", "what": "old"}
	explicit := rroute.Query{"what": "do"}

	merged := explicit.Merge(defaults)
	if diff := cmp.Diff(rroute.Query{"persist": "pls", "what": "do"}, merged); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}

	// inputs untouched
	assert.Equal(t, defaults["what"], "old")
	assert.Equal(t, len(explicit), 1)
}

func TestNormalize(t *testing.T) {
	fromSearch := rroute.Location{Pathname: "/a", Search: "?x=1"}.Normalize()
	assert.Equal(t, fromSearch.Query["x"], "1")

	fromQuery := rroute.Location{Pathname: "/a", Query: rroute.Query{"x": "1"}}.Normalize()
	assert.Equal(t, fromQuery.Search, "?x=1")

	emptyQuery := rroute.Location{Pathname: "/a", Search: "?x=1", Query: rroute.Query{}}.Normalize()
	assert.Equal(t, emptyQuery.Query["x"], "1")
	assert.Equal(t, emptyQuery.String(), "/a?x=1")

	bare := rroute.Location{Pathname: "/a"}.Normalize()
	assert.True(t, bare.Query != nil)
	assert.Equal(t, bare.String(), "/a")
}

func TestParseQueryKeepsWellFormedPairs(t *testing.T) {
	q := rroute.ParseQuery("ok=1&bad=%zz&dup=first&dup=second")
	assert.Equal(t, q["ok"], "1")
	assert.Equal(t, q["dup"], "first")
	_, hasBad := q["bad"]
	assert.False(t, hasBad)
}
