package rroute

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rroute/core/ids"
	"github.com/rohanthewiz/rroute/core/rtr"
	"github.com/sirupsen/logrus"
)

// Options configures a Resolver or a Navigator. The zero value is usable.
type Options struct {
	// Basename is prefixed to every link href
	Basename string
	// Logger defaults to the logrus standard logger
	Logger logrus.FieldLogger
	// Sink observes fragment evaluations, defaults to a no-op
	Sink Sink
	// Patterns caches compiled route patterns, a private cache is created if nil
	Patterns *rtr.Cache
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Sink == nil {
		o.Sink = nopSink{}
	}
	if o.Patterns == nil {
		o.Patterns = rtr.NewCache()
	}
	return o
}

// ParentContext is what a fragment hands to its descendants.
// The zero value is the context of the outermost fragment.
type ParentContext struct {
	ParentID    ids.ID
	ParentRoute string
	Cache       *MatchCache
}

// Resolver evaluates fragment trees against locations.
// Passes are independent; a Resolver may run several concurrently.
type Resolver struct {
	log      logrus.FieldLogger
	sink     Sink
	patterns *rtr.Cache
}

// NewResolver creates a resolver.
func NewResolver(opts Options) *Resolver {
	opts = opts.withDefaults()
	return &Resolver{
		log:      opts.Logger,
		sink:     opts.Sink,
		patterns: opts.Patterns,
	}
}

// Resolve runs one resolution pass over the tree with a fresh match cache.
func (r *Resolver) Resolve(loc Location, root Node) (*Pass, error) {
	pass := NewPass(loc)

	if err := r.ResolveIn(ParentContext{Cache: NewMatchCache()}, pass, root); err != nil {
		return nil, err
	}
	return pass, nil
}

// ResolveIn resolves a subtree under an explicit parent context, appending
// to the given pass. A nil cache in the context is replaced by a fresh one.
func (r *Resolver) ResolveIn(pc ParentContext, pass *Pass, node Node) error {
	if pc.Cache == nil {
		pc.Cache = NewMatchCache()
	}

	switch n := node.(type) {
	case nil:
		return nil

	case *Fragment:
		return r.resolveFragment(pc, pass, n)

	case Group:
		for _, child := range n {
			if err := r.ResolveIn(pc, pass, child); err != nil {
				return err
			}
		}
		return nil

	default:
		pass.leaves = append(pass.leaves, n)
		return nil
	}
}

func (r *Resolver) resolveFragment(pc ParentContext, pass *Pass, f *Fragment) error {
	pattern := ResolveCurrentRoute(pc.ParentRoute, f.route)

	log := r.log.WithFields(logrus.Fields{
		"fragment": f.id,
		"variant":  f.variant,
		"pattern":  pattern,
	})

	observe := func(o Outcome) {
		r.sink.Observe(Resolution{ID: f.id, Name: f.name, Variant: f.variant, Pattern: pattern, Outcome: o})
	}

	show, params, err := r.shouldShow(f, pattern, pass.location)
	if err != nil {
		return err
	}

	switch f.variant {
	case RouteBound, ConditionOnly:
		if !show {
			log.Debug("fragment hidden")
			observe(OutcomeHidden)
			return nil
		}
	case Fallback:
		// shown unless a sibling claimed the match
	}

	if pc.ParentID != "" {
		// An empty registration (route-less sibling) does not claim the level
		if previous, ok := pc.Cache.Get(pc.ParentID); ok && previous != "" && previous != pattern {
			log.WithField("claimedBy", previous).Debug("fragment suppressed by sibling")
			observe(OutcomeSuppressed)
			return nil
		}
		pc.Cache.Add(pc.ParentID, pattern)
	}

	observe(OutcomeShown)

	if len(f.children) != 1 {
		return &ConfigurationError{FragmentID: f.id, Name: f.name, Children: len(f.children)}
	}

	log.Debug("fragment shown")
	pass.activations = append(pass.activations, Activation{
		ID:      f.id,
		Name:    f.name,
		Variant: f.variant,
		Route:   f.route,
		Pattern: pattern,
		Params:  params,
	})

	return r.ResolveIn(ParentContext{
		ParentID:    f.id,
		ParentRoute: ResolveChildRoute(pc.ParentRoute, f.route),
		Cache:       pc.Cache,
	}, pass, f.children[0])
}

// shouldShow applies the fragment's route and condition to the location.
// Route-less fragments without a condition never show on their own.
func (r *Resolver) shouldShow(f *Fragment, pattern string, loc Location) (bool, []rtr.Parameter, error) {
	if f.route == "" {
		return f.condition != nil && f.condition(loc), nil, nil
	}

	matcher, err := r.patterns.Get(pattern)
	if err != nil {
		return false, nil, err
	}

	params, ok := matcher.Match(loc.Pathname)
	if !ok {
		return false, nil, nil
	}

	if f.condition != nil && !f.condition(loc) {
		return false, nil, nil
	}
	return true, params, nil
}

// Activation records a fragment shown during a pass.
type Activation struct {
	ID      ids.ID
	Name    string
	Variant Variant
	Route   string // as declared
	Pattern string // composed pattern, empty for route-less fragments
	Params  []rtr.Parameter
}

// Param returns a parameter captured by the fragment's pattern.
func (a Activation) Param(key string) string {
	return rtr.Param(a.Params, key)
}

// Pass is the result of one resolution pass.
type Pass struct {
	location    Location
	activations []Activation
	leaves      []Node
}

// NewPass starts an empty pass over the location, for use with ResolveIn.
func NewPass(loc Location) *Pass {
	return &Pass{location: loc.Normalize()}
}

// Location returns the location the pass was resolved against.
func (p *Pass) Location() Location {
	return p.location
}

// Activations lists the shown fragments in render order.
func (p *Pass) Activations() []Activation {
	return p.activations
}

// Activation finds a shown fragment by name.
func (p *Pass) Activation(name string) (Activation, bool) {
	for _, a := range p.activations {
		if a.Name == name {
			return a, true
		}
	}
	return Activation{}, false
}

// Active reports whether a fragment with the given name was shown.
func (p *Pass) Active(name string) bool {
	_, ok := p.Activation(name)
	return ok
}

// Shown reports whether the given fragment instance was shown.
func (p *Pass) Shown(f *Fragment) bool {
	for _, a := range p.activations {
		if a.ID == f.id {
			return true
		}
	}
	return false
}

// Leaves returns the rendered leaf nodes in render order.
func (p *Pass) Leaves() []Node {
	return p.leaves
}

// Render writes every renderable leaf into the builder.
func (p *Pass) Render(b *element.Builder) any {
	for _, leaf := range p.leaves {
		if c, ok := leaf.(element.Component); ok {
			element.RenderComponents(b, c)
		}
	}
	return nil
}

// HTML renders the pass into a string.
func (p *Pass) HTML() string {
	b := element.NewBuilder()
	p.Render(b)
	return b.String()
}
