package rroute

import (
	"github.com/rohanthewiz/rroute/consts"
	"github.com/sirupsen/logrus"
)

// Event is a click on a rendered link.
type Event struct {
	Button   int
	ShiftKey bool
	AltKey   bool
	MetaKey  bool
	CtrlKey  bool

	// PreventDefault suppresses the browser's own navigation
	PreventDefault func()
}

// Modified reports whether any modifier key was held.
func (e *Event) Modified() bool {
	return e.ShiftKey || e.AltKey || e.MetaKey || e.CtrlKey
}

// Action is a navigation intent dispatched to the store.
type Action struct {
	Type    string
	Payload Payload
}

// Payload carries the target location of a navigation.
type Payload struct {
	Pathname string
	Search   string
	Query    Query
	Options  NavOptions
}

// NavOptions tune how the store applies a navigation.
type NavOptions struct {
	PersistQuery bool
}

// Location returns the payload's target location.
func (p Payload) Location() Location {
	return Location{Pathname: p.Pathname, Search: p.Search, Query: p.Query}
}

// Store is the state container links read from and dispatch to.
type Store interface {
	Dispatch(Action)
	Location() Location
}

// Navigator resolves links against a store and turns clicks into actions.
type Navigator struct {
	store    Store
	basename string
	log      logrus.FieldLogger
}

// NewNavigator creates a navigator over the store.
func NewNavigator(store Store, opts Options) *Navigator {
	opts = opts.withDefaults()
	return &Navigator{
		store:    store,
		basename: opts.Basename,
		log:      opts.Logger,
	}
}

// Anchor resolves the link against the store's current location.
func (n *Navigator) Anchor(link Link) (*Anchor, error) {
	return ResolveLink(link, n.store.Location(), n.basename)
}

// Click handles a click on the link. Clicks with a modifier key or a button
// other than the primary one are left to the browser and report false.
// A nil event is treated as a plain primary click.
// Otherwise the default is prevented, OnClick runs and a single
// PUSH (or REPLACE) action is dispatched.
func (n *Navigator) Click(link Link, e *Event) (bool, error) {
	if e == nil {
		e = &Event{Button: consts.ButtonPrimary}
	}
	if e.Modified() || e.Button != consts.ButtonPrimary {
		return false, nil
	}

	target, err := link.Target()
	if err != nil {
		return false, err
	}

	if e.PreventDefault != nil {
		e.PreventDefault()
	}

	if link.OnClick != nil {
		link.OnClick(e)
	}

	action := Action{
		Type: consts.ActionPush,
		Payload: Payload{
			Pathname: target.Pathname,
			Search:   target.Search,
			Query:    target.Query,
			Options:  NavOptions{PersistQuery: link.PersistQuery},
		},
	}
	if link.ReplaceState {
		action.Type = consts.ActionReplace
	}

	n.log.WithFields(logrus.Fields{
		"type":     action.Type,
		"location": target.String(),
	}).Debug("dispatching navigation")

	n.store.Dispatch(action)
	return true, nil
}
