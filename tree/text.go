package tree

import "github.com/pkg/errors"

// ErrInvalidShape reports a node whose children do not follow the
// single-text-child convention Text relies on.
var ErrInvalidShape = errors.New("node does not have a single text child")

// Text returns the value of n's sole text child. A childless node reads as
// the empty string. Any other shape, more than one child or a lone
// non-text child, fails with ErrInvalidShape.
func (n *Node) Text() (string, error) {
	switch {
	case len(n.ChildNodes) == 0:
		return "", nil
	case len(n.ChildNodes) > 1:
		return "", errors.Wrapf(ErrInvalidShape, "%s has %d children", n.NodeName, len(n.ChildNodes))
	}
	child := n.ChildNodes[0]
	if child.Type != TextNode {
		return "", errors.Wrapf(ErrInvalidShape, "%s child is %s", n.NodeName, child.NodeName)
	}
	return child.Data, nil
}

// SetText discards all of n's children and installs a single fresh text
// child holding text. Returns n for chaining.
func (n *Node) SetText(text string) *Node {
	for _, child := range n.ChildNodes {
		child.ParentNode = nil
	}
	n.ChildNodes = nil
	n.Append(NewText(text))
	return n
}
