// Package treefile loads fragment trees declared in YAML.
//
// A node is one of:
//
//	text: "Hello"                  # leaf
//	group: [ ...nodes ]            # siblings sharing the parent's match
//	name: home                     # fragment
//	forRoute: /home
//	forNoMatch: false
//	withQuery: {tab: inbox}        # condition: every key equals its value ("*" = present)
//	child: { ...node }
package treefile

import (
	"os"

	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/rroute/core/ids"
	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// MaxFileSize bounds tree files read from disk.
const MaxFileSize = 1024 * 1024

// anyValue in withQuery only requires the key to be present
const anyValue = "*"

// Node is the YAML form of a tree node.
type Node struct {
	Name       string            `yaml:"name"`
	ForRoute   string            `yaml:"forRoute"`
	ForNoMatch bool              `yaml:"forNoMatch"`
	WithQuery  map[string]string `yaml:"withQuery"`
	Child      *Node             `yaml:"child"`
	Children   []Node            `yaml:"children"`
	Group      []Node            `yaml:"group"`
	Text       string            `yaml:"text"`
}

// Load reads and builds the tree in the file.
func Load(path string, gen ids.Generator) (rroute.Node, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}
	if info.Size() > MaxFileSize {
		return nil, serr.New("tree file too large", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}

	node, err := Parse(data, gen)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}
	return node, nil
}

// Parse builds the tree from YAML.
func Parse(data []byte, gen ids.Generator) (rroute.Node, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, serr.Wrap(err, "msg", "invalid tree yaml")
	}
	return root.Build(gen)
}

func (n Node) isFragment() bool {
	return n.Name != "" || n.ForRoute != "" || n.ForNoMatch || len(n.WithQuery) > 0 ||
		n.Child != nil || len(n.Children) > 0
}

// Build converts the node into a resolvable tree.
func (n Node) Build(gen ids.Generator) (rroute.Node, error) {
	switch {
	case len(n.Group) > 0:
		if n.isFragment() || n.Text != "" {
			return nil, serr.New("a group node cannot declare fragment or text keys", "name", n.Name)
		}

		group := make(rroute.Group, 0, len(n.Group))
		for _, child := range n.Group {
			built, err := child.Build(gen)
			if err != nil {
				return nil, err
			}
			group = append(group, built)
		}
		return group, nil

	case n.isFragment():
		if n.Text != "" {
			return nil, serr.New("a fragment carries its text in a child node", "name", n.Name)
		}

		var kids []rroute.Node
		if n.Child != nil {
			built, err := n.Child.Build(gen)
			if err != nil {
				return nil, err
			}
			kids = append(kids, built)
		}
		for _, child := range n.Children {
			built, err := child.Build(gen)
			if err != nil {
				return nil, err
			}
			kids = append(kids, built)
		}

		return rroute.NewFragment(rroute.FragmentConfig{
			Name:           n.Name,
			ForRoute:       n.ForRoute,
			ForNoMatch:     n.ForNoMatch,
			WithConditions: QueryCondition(n.WithQuery),
			IDs:            gen,
		}, kids...), nil

	case n.Text != "":
		return rroute.Text(n.Text), nil

	default:
		return nil, serr.New("empty tree node")
	}
}

// QueryCondition returns a condition requiring the location's query to carry
// every given key with the given value. A nil or empty map yields no condition.
func QueryCondition(want map[string]string) rroute.Condition {
	if len(want) == 0 {
		return nil
	}

	return func(loc rroute.Location) bool {
		for k, v := range want {
			got, ok := loc.Query[k]
			if !ok || (v != anyValue && got != v) {
				return false
			}
		}
		return true
	}
}
