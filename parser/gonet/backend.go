// Package gonet adapts golang.org/x/net/html to the tree model. It is the
// default parser backend and carries the HTML serializer.
package gonet

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cezaraugusto/parse5-utilities/tree"
)

// Backend parses and serializes through golang.org/x/net/html.
type Backend struct{}

func New() *Backend { return &Backend{} }

// ParseDocument parses text as a complete page. The result is rooted at a
// document node; the parser inserts whatever html/head/body scaffolding
// the page implies.
func (b *Backend) ParseDocument(text string) (*tree.Node, error) {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}
	return convert(doc), nil
}

// ParseFragment parses text in a body context and roots the results under
// a fragment node, with no implied html/head/body wrapping.
func (b *Backend) ParseFragment(text string) (*tree.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(text), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse fragment")
	}
	frag := tree.NewFragment()
	for _, n := range nodes {
		if child := convert(n); child != nil {
			frag.Append(child)
		}
	}
	return frag, nil
}

// convert maps an x/net/html subtree to the tree model, preserving child
// and attribute order. Unprefixed HTML elements come back from x/net/html
// with an empty Namespace; those land in the standard HTML namespace.
func convert(n *html.Node) *tree.Node {
	var out *tree.Node
	switch n.Type {
	case html.DocumentNode:
		out = tree.NewDocument()
	case html.ElementNode:
		out = tree.NewElement(n.Data)
		if n.Namespace != "" {
			out.Namespace = n.Namespace
		}
		for _, a := range n.Attr {
			out.Attrs = append(out.Attrs, tree.Attr{Name: a.Key, Value: a.Val})
		}
	case html.TextNode:
		out = tree.NewText(n.Data)
	case html.CommentNode:
		out = tree.NewComment(n.Data)
	case html.DoctypeNode:
		out = tree.NewDoctype(n.Data)
	default:
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			out.Append(child)
		}
	}
	return out
}
