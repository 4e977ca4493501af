package rroute

import (
	"fmt"

	"github.com/rohanthewiz/rroute/core/ids"
)

// ConfigurationError reports a fragment that was given other than exactly one child.
type ConfigurationError struct {
	FragmentID ids.ID
	Name       string
	Children   int
}

func (e *ConfigurationError) Error() string {
	label := string(e.FragmentID)
	if e.Name != "" {
		label = e.Name + " (" + label + ")"
	}
	return fmt.Sprintf("rroute: fragment %s must have exactly one child, got %d", label, e.Children)
}

// InvalidTargetError reports a link target that is neither a string
// nor a location carrying a pathname.
type InvalidTargetError struct {
	Target any
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("rroute: invalid link target %#v: want a string or a location with a pathname", e.Target)
}
