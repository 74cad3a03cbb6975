// Package ui holds the primitive components every page is built from.
//
// Each primitive takes a slice of caller attributes that are merged over the
// primitive's own defaults: a caller attribute always wins over a default of
// the same name, and class lists are merged with Cn.
package ui

import (
	g "maragu.dev/gomponents"
)

// Attr is a single HTML attribute. Boolean attributes render without a value.
type Attr struct {
	Name    string
	Value   string
	Boolean bool
}

// A returns a name="value" attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Flag returns a boolean attribute such as required or disabled.
func Flag(name string) Attr {
	return Attr{Name: name, Boolean: true}
}

// Class returns a class attribute.
func Class(classes ...string) Attr {
	return A("class", Cn(classes...))
}

// ID returns an id attribute.
func ID(id string) Attr {
	return A("id", id)
}

func (a Attr) node() g.Node {
	if a.Boolean {
		return g.Attr(a.Name)
	}
	return g.Attr(a.Name, a.Value)
}

// MergeAttrs lays overrides over defaults. Attributes keep the position of
// their first appearance, later values replace earlier ones, and class
// values are combined so the override's utilities win conflicts.
func MergeAttrs(defaults, overrides []Attr) []Attr {
	merged := make([]Attr, 0, len(defaults)+len(overrides))
	index := make(map[string]int, len(defaults)+len(overrides))

	for _, list := range [][]Attr{defaults, overrides} {
		for _, a := range list {
			if a.Name == "" {
				continue
			}
			i, seen := index[a.Name]
			if !seen {
				index[a.Name] = len(merged)
				merged = append(merged, a)
				continue
			}
			if a.Name == "class" {
				merged[i].Value = Cn(merged[i].Value, a.Value)
				continue
			}
			merged[i] = a
		}
	}
	return merged
}

// element renders tag with merged attributes followed by children.
func element(tag string, defaults, attrs []Attr, children ...g.Node) g.Node {
	merged := MergeAttrs(defaults, attrs)
	nodes := make([]g.Node, 0, len(merged)+len(children))
	for _, a := range merged {
		nodes = append(nodes, a.node())
	}
	nodes = append(nodes, children...)
	return g.El(tag, nodes...)
}

// El renders an arbitrary element carrying attrs, for layout wrappers that
// have no primitive of their own.
func El(tag string, attrs []Attr, children ...g.Node) g.Node {
	return element(tag, nil, attrs, children...)
}
