package rroute

import (
	"sort"
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rroute/consts"
)

// Attrs are passthrough attributes of the rendered anchor.
type Attrs map[string]string

// Style is an inline style, property to value.
type Style map[string]string

// Props is an attribute overlay applied to an active link.
type Props struct {
	Attrs Attrs
	Style Style
}

// Link declares a navigable anchor.
//
// Href may be a string ("/path?key=value"), a Location, a *Location,
// or a map with a "pathname" key and optional "query" or "search" keys.
type Link struct {
	Href         any
	PersistQuery bool
	ReplaceState bool
	ActiveProps  *Props
	Attrs        Attrs
	Style        Style
	OnClick      func(*Event)
	Text         string
}

// NewPersistentQueryLink declares a link that carries the current query forward.
func NewPersistentQueryLink(link Link) Link {
	link.PersistQuery = true
	return link
}

// Target normalizes the link's href into a location.
// The current query is not merged in; that happens when the href is resolved
// or when the store applies the navigation.
func (l Link) Target() (Location, error) {
	switch href := l.Href.(type) {
	case string:
		return ParseLocation(href), nil

	case Location:
		return targetFromLocation(href, l.Href)

	case *Location:
		if href == nil {
			return Location{}, &InvalidTargetError{Target: l.Href}
		}
		return targetFromLocation(*href, l.Href)

	case map[string]any:
		return targetFromMap(href)

	default:
		return Location{}, &InvalidTargetError{Target: l.Href}
	}
}

func targetFromLocation(loc Location, raw any) (Location, error) {
	if loc.Pathname == "" {
		return Location{}, &InvalidTargetError{Target: raw}
	}

	// A search embedded in the pathname acts as defaults beneath explicit values
	embedded := ParseLocation(loc.Pathname)
	loc.Pathname = embedded.Pathname

	switch {
	case len(loc.Query) > 0:
		loc.Query = loc.Query.Merge(embedded.Query)
		loc.Search = loc.Query.Search()
	case loc.Search != "":
		if !strings.HasPrefix(loc.Search, consts.QueryPrefix) {
			loc.Search = consts.QueryPrefix + loc.Search
		}
		loc.Query = ParseQuery(loc.Search)
	default:
		loc.Search = embedded.Search
		loc.Query = embedded.Query
	}
	return loc, nil
}

func targetFromMap(m map[string]any) (Location, error) {
	pathname, ok := m["pathname"].(string)
	if !ok {
		return Location{}, &InvalidTargetError{Target: m}
	}

	loc := Location{Pathname: pathname}

	switch q := m["query"].(type) {
	case Query:
		loc.Query = q
	case map[string]string:
		loc.Query = q
	case map[string]any:
		loc.Query = make(Query, len(q))
		for k, v := range q {
			if s, ok := v.(string); ok {
				loc.Query[k] = s
			}
		}
	}

	if search, ok := m["search"].(string); ok {
		loc.Search = search
	}

	return targetFromLocation(loc, m)
}

// Anchor is a link resolved against the current location, ready to render.
type Anchor struct {
	Href     string
	Location Location // target with any persisted query merged in
	Active   bool
	Attrs    Attrs
	Style    Style
	Text     string
}

// ResolveLink computes the href and active state of a link.
func ResolveLink(link Link, current Location, basename string) (*Anchor, error) {
	target, err := link.Target()
	if err != nil {
		return nil, err
	}

	current = current.Normalize()

	if link.PersistQuery && len(current.Query) > 0 {
		target.Query = target.Query.Merge(current.Query)
		target.Search = target.Query.Search()
	}

	a := &Anchor{
		Href:     basename + target.Pathname + target.Search,
		Location: target,
		Active:   target.Pathname == current.Pathname,
		Text:     link.Text,
		Attrs:    make(Attrs, len(link.Attrs)),
	}

	for k, v := range link.Attrs {
		if k == consts.AttrHref || k == consts.AttrStyle {
			continue
		}
		a.Attrs[k] = v
	}

	if len(link.Style) > 0 {
		a.Style = make(Style, len(link.Style))
		for k, v := range link.Style {
			a.Style[k] = v
		}
	}

	if a.Active && link.ActiveProps != nil {
		for k, v := range link.ActiveProps.Attrs {
			if k == consts.AttrHref || k == consts.AttrStyle {
				continue
			}
			a.Attrs[k] = v
		}

		if len(link.ActiveProps.Style) > 0 {
			if a.Style == nil {
				a.Style = make(Style, len(link.ActiveProps.Style))
			}
			for k, v := range link.ActiveProps.Style {
				a.Style[k] = v
			}
		}
	}

	return a, nil
}

// String renders the style as a CSS declaration list with sorted properties.
func (s Style) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(s[k])
	}
	return sb.String()
}

// attrPairs flattens the anchor attributes into key/value pairs:
// href first, the passthrough attributes sorted by name, style last.
func (a *Anchor) attrPairs() []string {
	keys := make([]string, 0, len(a.Attrs))
	for k := range a.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys)+4)
	pairs = append(pairs, consts.AttrHref, a.Href)
	for _, k := range keys {
		pairs = append(pairs, k, a.Attrs[k])
	}
	if len(a.Style) > 0 {
		pairs = append(pairs, consts.AttrStyle, a.Style.String())
	}
	return pairs
}

// Render writes the anchor element.
func (a *Anchor) Render(b *element.Builder) any {
	b.A(a.attrPairs()...).T(a.Text)
	return nil
}

// HTML renders the anchor into a string.
func (a *Anchor) HTML() string {
	b := element.NewBuilder()
	a.Render(b)
	return b.String()
}
