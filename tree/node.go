package tree

import "strings"

// NodeType identifies the kind of a Node. The set is closed: these are the
// only kinds the parser backend produces and the mutators accept.
type NodeType uint8

const (
	DocumentNode NodeType = iota + 1
	FragmentNode
	ElementNode
	TextNode
	CommentNode
	DoctypeNode
)

// HTMLNamespace is the namespace of every element this package creates.
const HTMLNamespace = "http://www.w3.org/1999/xhtml"

// Node is a single node of a parsed HTML tree. Nodes mutate in place and
// are compared by identity, so the same *Node must be threaded through a
// sequence of edits.
type Node struct {
	Type NodeType

	// NodeName is the tag name for elements and a #-prefixed marker for
	// the other kinds (#document, #document-fragment, #text, #comment).
	NodeName string

	// Data carries the payload of leaf kinds: text content for TextNode,
	// comment content for CommentNode, the doctype name for DoctypeNode.
	Data string

	Namespace string
	Attrs     []Attr

	// ParentNode is a non-owning back-reference used for traversal and for
	// the identity lookups Remove and Replace perform. The parent's
	// ChildNodes slice is the owning collection.
	ParentNode *Node
	ChildNodes NodeList
}

// NewElement returns a fresh, detached element in the HTML namespace with
// no attributes and no children.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, NodeName: tag, Namespace: HTMLNamespace}
}

// NewText returns a fresh, detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, NodeName: "#text", Data: text}
}

// NewDocument returns an empty document root.
func NewDocument() *Node {
	return &Node{Type: DocumentNode, NodeName: "#document"}
}

// NewFragment returns an empty fragment root. Fragments carry parsed
// subtrees without implying any html/head/body wrapping.
func NewFragment() *Node {
	return &Node{Type: FragmentNode, NodeName: "#document-fragment"}
}

// NewComment returns a fresh, detached comment node.
func NewComment(data string) *Node {
	return &Node{Type: CommentNode, NodeName: "#comment", Data: data}
}

// NewDoctype returns a doctype node for the given name.
func NewDoctype(name string) *Node {
	return &Node{Type: DoctypeNode, NodeName: name, Data: name}
}

func (n *Node) IsElement() bool { return n.Type == ElementNode }

func (n *Node) IsText() bool { return n.Type == TextNode }

// IsContainer reports whether n is a kind that holds children.
func (n *Node) IsContainer() bool {
	switch n.Type {
	case DocumentNode, FragmentNode, ElementNode:
		return true
	}
	return false
}

// Clone returns a detached copy of n. With deep set, the copy carries a
// recursive copy of the child list; otherwise it has no children.
func (n *Node) Clone(deep bool) *Node {
	c := &Node{
		Type:      n.Type,
		NodeName:  n.NodeName,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attrs) > 0 {
		c.Attrs = make([]Attr, len(n.Attrs))
		copy(c.Attrs, n.Attrs)
	}
	if deep {
		for _, child := range n.ChildNodes {
			c.Append(child.Clone(true))
		}
	}
	return c
}

// Equal reports structural equality: same kind, name, payload, attribute
// set, and recursively equal children in the same order. Attribute order
// is not significant here; name/value pairs are.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type || n.NodeName != o.NodeName || n.Data != o.Data || n.Namespace != o.Namespace {
		return false
	}
	if len(n.Attrs) != len(o.Attrs) {
		return false
	}
	for _, a := range n.Attrs {
		v, ok := o.GetAttribute(a.Name)
		if !ok || v != a.Value {
			return false
		}
	}
	if len(n.ChildNodes) != len(o.ChildNodes) {
		return false
	}
	for i := range n.ChildNodes {
		if !n.ChildNodes[i].Equal(o.ChildNodes[i]) {
			return false
		}
	}
	return true
}

// String renders an indented dump of the subtree for debugging and test
// failure output. It is not HTML; use the serializer backend for that.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	if n.Type != DocumentNode && n.Type != FragmentNode {
		sb.WriteString("| ")
		for i := 1; i < depth; i++ {
			sb.WriteString("  ")
		}
	}
	switch n.Type {
	case DocumentNode:
		sb.WriteString("#document")
	case FragmentNode:
		sb.WriteString("#document-fragment")
	case ElementNode:
		sb.WriteString("<" + n.NodeName)
		for _, a := range n.Attrs {
			sb.WriteString(" " + a.Name + "=\"" + a.Value + "\"")
		}
		sb.WriteString(">")
	case TextNode:
		sb.WriteString("\"" + n.Data + "\"")
	case CommentNode:
		sb.WriteString("<!-- " + n.Data + " -->")
	case DoctypeNode:
		sb.WriteString("<!DOCTYPE " + n.Data + ">")
	}
	sb.WriteString("\n")
	for _, child := range n.ChildNodes {
		child.dump(sb, depth+1)
	}
}
