package gonet

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cezaraugusto/parse5-utilities/tree"
)

// Void elements never take an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}
	return s
}

// Serialize renders the children of n, so serializing a fragment or
// document yields the markup it holds without inventing a wrapper for the
// root itself. Only container nodes can be serialized.
func (b *Backend) Serialize(n *tree.Node) (string, error) {
	if !n.IsContainer() {
		return "", errors.Errorf("cannot serialize %s node", n.NodeName)
	}
	var sb strings.Builder
	for _, child := range n.ChildNodes {
		writeNode(&sb, child)
	}
	return sb.String(), nil
}

func writeNode(sb *strings.Builder, n *tree.Node) {
	switch n.Type {
	case tree.ElementNode:
		sb.WriteString("<")
		sb.WriteString(n.NodeName)
		for _, a := range n.Attrs {
			sb.WriteString(" ")
			sb.WriteString(a.Name)
			sb.WriteString("=\"")
			sb.WriteString(escapeString(a.Value, true))
			sb.WriteString("\"")
		}
		sb.WriteString(">")
		if voidElements[n.NodeName] {
			return
		}
		for _, child := range n.ChildNodes {
			writeNode(sb, child)
		}
		sb.WriteString("</")
		sb.WriteString(n.NodeName)
		sb.WriteString(">")
	case tree.TextNode:
		// Text is escaped unconditionally, including under script and
		// style.
		sb.WriteString(escapeString(n.Data, false))
	case tree.CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")
	case tree.DoctypeNode:
		sb.WriteString("<!DOCTYPE ")
		sb.WriteString(n.Data)
		sb.WriteString(">")
	case tree.DocumentNode, tree.FragmentNode:
		for _, child := range n.ChildNodes {
			writeNode(sb, child)
		}
	}
}
