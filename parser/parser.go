// Package parser is the entry point for turning HTML text into a tree and
// back. Parsing and serialization are delegated to a Backend; the default
// backend is golang.org/x/net/html via the gonet subpackage.
package parser

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cezaraugusto/parse5-utilities/parser/gonet"
	"github.com/cezaraugusto/parse5-utilities/tree"
)

// Backend is the parser/serializer capability this package delegates to.
// Implementations must preserve attribute order and child order as written
// in the source text, represent text runs as text nodes, and escape text
// content on the way back out.
type Backend interface {
	ParseDocument(text string) (*tree.Node, error)
	ParseFragment(text string) (*tree.Node, error)
	Serialize(n *tree.Node) (string, error)
}

// DefaultBackend backs Parse, Fragment, and Stringify.
var DefaultBackend Backend = gonet.New()

// Parse turns text into a tree rooted at a document node. With smart set,
// input that does not look like a full document per IsDocument is parsed
// as a fragment instead.
func Parse(text string, smart bool) (*tree.Node, error) {
	return ParseWith(DefaultBackend, text, smart)
}

// ParseWith is Parse against an explicit backend.
func ParseWith(b Backend, text string, smart bool) (*tree.Node, error) {
	if smart && !IsDocument(text) {
		logrus.WithField("mode", "fragment").Debug("smart parse: input does not look like a document")
		return b.ParseFragment(text)
	}
	return b.ParseDocument(text)
}

// Fragment parses text as a fragment unconditionally.
func Fragment(text string) (*tree.Node, error) {
	return DefaultBackend.ParseFragment(text)
}

// Stringify serializes the children of a container node (document,
// fragment, or element) back to HTML text.
func Stringify(n *tree.Node) (string, error) {
	if !n.IsContainer() {
		return "", errors.Errorf("cannot stringify %s node", n.NodeName)
	}
	return DefaultBackend.Serialize(n)
}
