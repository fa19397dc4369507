package tree

import "sort"

// Attr is a single name/value attribute. Order within an element is
// insertion order and survives serialization. Names are unique per
// element for every node this package builds.
type Attr struct {
	Name  string
	Value string
}

// ToAttrs projects a name-to-value map into an attribute slice. Go maps
// have no stable iteration order, so the slice is sorted by name to keep
// the projection deterministic.
func ToAttrs(m map[string]string) []Attr {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	attrs := make([]Attr, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, Attr{Name: name, Value: m[name]})
	}
	return attrs
}

// Attributes folds the element's attribute list into a map. Non-element
// nodes yield an empty map rather than an error. Duplicate names, possible
// only on externally built nodes, collapse with the later occurrence
// winning.
func (n *Node) Attributes() map[string]string {
	m := make(map[string]string, len(n.Attrs))
	if n.Type != ElementNode {
		return m
	}
	for _, a := range n.Attrs {
		m[a.Name] = a.Value
	}
	return m
}

// SetAttribute updates the named attribute in place, keeping its position,
// or appends it when absent. Non-element nodes are left untouched. Returns
// n for chaining.
func (n *Node) SetAttribute(name, value string) *Node {
	if n.Type != ElementNode {
		return n
	}
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// GetAttribute returns the named attribute's value. The second result is
// false for non-elements and for absent names.
func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Type != ElementNode {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// RemoveAttribute drops the named attribute, preserving the order of the
// rest. Absent names and non-element nodes are a silent no-op.
func (n *Node) RemoveAttribute(name string) {
	if n.Type != ElementNode {
		return
	}
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return
		}
	}
}
