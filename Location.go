package rroute

import (
	"net/url"
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// Location is a navigable address: the current one read from the store
// or a target produced by a link.
type Location struct {
	Pathname string
	Search   string // raw query string including the leading "?", or empty
	Query    Query
}

// Query holds the decoded query parameters of a location. One value per key.
type Query map[string]string

// ParseLocation splits a string href into pathname and query parts.
func ParseLocation(href string) Location {
	loc := Location{Pathname: href}

	if i := strings.IndexByte(href, consts.RuneQuestion); i != -1 {
		loc.Pathname = href[:i]
		loc.Search = href[i:]
	}

	loc.Query = ParseQuery(loc.Search)
	return loc
}

// Normalize derives whichever of Search and Query is missing from the other,
// so both can be read consistently.
func (loc Location) Normalize() Location {
	switch {
	case len(loc.Query) == 0 && loc.Search != "":
		loc.Query = ParseQuery(loc.Search)
	case loc.Search == "" && len(loc.Query) > 0:
		loc.Search = loc.Query.Search()
	}

	if loc.Query == nil {
		loc.Query = Query{}
	}
	return loc
}

// String returns the pathname followed by the search string.
func (loc Location) String() string {
	return loc.Pathname + loc.Search
}

// ParseQuery decodes a search string, with or without its leading "?".
// Malformed pairs are skipped; when a key repeats the first value wins.
func ParseQuery(search string) Query {
	q := Query{}

	search = strings.TrimPrefix(search, consts.QueryPrefix)
	if search == "" {
		return q
	}

	// ParseQuery still returns the well-formed pairs alongside an error
	values, _ := url.ParseQuery(search)
	for k, v := range values {
		if len(v) > 0 {
			q[k] = v[0]
		}
	}
	return q
}

// Encode serializes the query with keys in sorted order, URL-encoded.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}

	values := make(url.Values, len(q))
	for k, v := range q {
		values.Set(k, v)
	}
	return values.Encode()
}

// Search returns the encoded query with a leading "?", or empty for an empty query.
func (q Query) Search() string {
	enc := q.Encode()
	if enc == "" {
		return ""
	}
	return consts.QueryPrefix + enc
}

// Merge returns a new query holding q's entries overlaid on the defaults.
// Keys present in q win.
func (q Query) Merge(defaults Query) Query {
	out := make(Query, len(q)+len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range q {
		out[k] = v
	}
	return out
}

// Clone returns a copy of the query.
func (q Query) Clone() Query {
	return q.Merge(nil)
}
