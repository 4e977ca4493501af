package rroute

import (
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// ResolveChildRoute computes the route a fragment hands down to its descendants.
// The parent route is prefixed unless it is absent, the root, or the fragment's own route.
func ResolveChildRoute(parentRoute, ownRoute string) string {
	if parentRoute != "" && parentRoute != consts.RootRoute && parentRoute != ownRoute {
		return parentRoute + ownRoute
	}
	return ownRoute
}

// ResolveCurrentRoute computes the fully qualified pattern a fragment matches against.
// An empty result means the fragment declares no route.
//
//	ResolveCurrentRoute("", "/home")    == "/home*"  outermost routes are prefix matches
//	ResolveCurrentRoute("/home", "/")   == "/home*"  index route under a non-root parent
//	ResolveCurrentRoute("/", "/")       == "/"       bare root is exact
//	ResolveCurrentRoute("/home", "/:id") == "/home/:id*"
func ResolveCurrentRoute(parentRoute, ownRoute string) string {
	if ownRoute == "" {
		return ""
	}

	// First route will always be a wildcard
	if parentRoute == "" {
		return ownRoute + consts.Wildcard
	}

	parentIsRoot := parentRoute == consts.RootRoute
	currentIsRoot := ownRoute == consts.RootRoute

	var prefix string
	if !parentIsRoot {
		prefix = strings.TrimSuffix(parentRoute, consts.Wildcard)
	}

	suffix := ownRoute
	if currentIsRoot && !parentIsRoot {
		suffix = ""
	}

	wildcard := consts.Wildcard
	if currentIsRoot && parentIsRoot {
		wildcard = ""
	}

	return prefix + suffix + wildcard
}
