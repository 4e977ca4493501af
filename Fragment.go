package rroute

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rroute/core/ids"
)

// Variant tags how a fragment decides whether to show.
type Variant int

const (
	// RouteBound fragments show when their composed pattern matches the
	// pathname and their condition, if any, holds.
	RouteBound Variant = iota + 1
	// ConditionOnly fragments declare no route and show only when their condition holds.
	ConditionOnly
	// Fallback fragments show when no earlier sibling claimed the match.
	Fallback
)

func (v Variant) String() string {
	switch v {
	case RouteBound:
		return "route"
	case ConditionOnly:
		return "condition"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Condition is an additional predicate over the current location.
type Condition func(Location) bool

// FragmentConfig is the declaration surface of a fragment.
type FragmentConfig struct {
	Name           string // optional label, reported on activations
	ForRoute       string
	WithConditions Condition
	ForNoMatch     bool
	IDs            ids.Generator // defaults to ids.Default
}

// Node is anything a fragment tree can hold:
// *Fragment, Group, Text or an element.Component.
type Node any

// Group holds sibling nodes. It passes the parent context through unchanged,
// so fragments inside a group compete for the same parent's match.
type Group []Node

// Text is a leaf rendered as escaped text.
type Text string

// Fragment is a subtree guarded by a route pattern and/or a condition.
// Its id is assigned once at construction and lives as long as the instance.
type Fragment struct {
	id        ids.ID
	name      string
	route     string
	condition Condition
	variant   Variant
	children  []Node
}

// NewFragment declares a fragment. Exactly one child is expected;
// any other count fails when the fragment is shown.
func NewFragment(cfg FragmentConfig, children ...Node) *Fragment {
	gen := cfg.IDs
	if gen == nil {
		gen = ids.Default
	}

	f := &Fragment{
		id:        gen.Next(),
		name:      cfg.Name,
		route:     cfg.ForRoute,
		condition: cfg.WithConditions,
		children:  children,
	}

	switch {
	case cfg.ForNoMatch:
		f.variant = Fallback
	case cfg.ForRoute != "":
		f.variant = RouteBound
	default:
		f.variant = ConditionOnly
	}
	return f
}

// ForRoute is shorthand for a route-bound fragment.
func ForRoute(route string, child Node) *Fragment {
	return NewFragment(FragmentConfig{ForRoute: route}, child)
}

// ForNoMatch is shorthand for a fallback fragment.
func ForNoMatch(child Node) *Fragment {
	return NewFragment(FragmentConfig{ForNoMatch: true}, child)
}

func (f *Fragment) ID() ids.ID       { return f.id }
func (f *Fragment) Name() string     { return f.name }
func (f *Fragment) Route() string    { return f.route }
func (f *Fragment) Variant() Variant { return f.variant }

// compile-time check that text leaves can be rendered
var _ element.Component = Text("")

// Render writes the text into the builder.
func (t Text) Render(b *element.Builder) any {
	b.T(string(t))
	return nil
}
