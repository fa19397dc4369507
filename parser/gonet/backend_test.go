package gonet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cezaraugusto/parse5-utilities/tree"
)

func TestParseFragmentRoot(t *testing.T) {
	frag, err := New().ParseFragment("<p>one</p><p>two</p>")
	require.NoError(t, err)

	assert.Equal(t, tree.FragmentNode, frag.Type)
	require.Len(t, frag.ChildNodes, 2)
	assert.Equal(t, "p", frag.ChildNodes[0].NodeName)
	assert.Same(t, frag, frag.ChildNodes[0].ParentNode)
}

func TestParseFragmentNoScaffolding(t *testing.T) {
	frag, err := New().ParseFragment("<div></div>")
	require.NoError(t, err)

	for _, n := range tree.Flatten(frag) {
		assert.NotEqual(t, "html", n.NodeName)
		assert.NotEqual(t, "body", n.NodeName)
	}
}

func TestParseDocumentScaffolding(t *testing.T) {
	doc, err := New().ParseDocument("<div></div>")
	require.NoError(t, err)

	assert.Equal(t, tree.DocumentNode, doc.Type)
	require.Len(t, doc.ChildNodes, 1)
	html := doc.ChildNodes[0]
	assert.Equal(t, "html", html.NodeName)
	require.Len(t, html.ChildNodes, 2)
	assert.Equal(t, "head", html.ChildNodes[0].NodeName)
	assert.Equal(t, "body", html.ChildNodes[1].NodeName)
}

func TestAttributeOrderPreserved(t *testing.T) {
	frag, err := New().ParseFragment(`<div b="2" a="1"></div>`)
	require.NoError(t, err)

	div := frag.ChildNodes[0]
	require.Len(t, div.Attrs, 2)
	assert.Equal(t, tree.Attr{Name: "b", Value: "2"}, div.Attrs[0])
	assert.Equal(t, tree.Attr{Name: "a", Value: "1"}, div.Attrs[1])
}

func TestTextRunsBecomeTextNodes(t *testing.T) {
	frag, err := New().ParseFragment("<p>hello <b>bold</b></p>")
	require.NoError(t, err)

	p := frag.ChildNodes[0]
	require.Len(t, p.ChildNodes, 2)
	assert.Equal(t, tree.TextNode, p.ChildNodes[0].Type)
	assert.Equal(t, "hello ", p.ChildNodes[0].Data)
	assert.Equal(t, "b", p.ChildNodes[1].NodeName)
}

func TestElementsGetHTMLNamespace(t *testing.T) {
	frag, err := New().ParseFragment("<div></div>")
	require.NoError(t, err)

	assert.Equal(t, tree.HTMLNamespace, frag.ChildNodes[0].Namespace)
}

func TestCommentConversion(t *testing.T) {
	frag, err := New().ParseFragment("<!--note-->")
	require.NoError(t, err)

	require.Len(t, frag.ChildNodes, 1)
	assert.Equal(t, tree.CommentNode, frag.ChildNodes[0].Type)
	assert.Equal(t, "note", frag.ChildNodes[0].Data)
}

func TestDoctypeConversion(t *testing.T) {
	doc, err := New().ParseDocument("<!doctype html><html></html>")
	require.NoError(t, err)

	require.NotEmpty(t, doc.ChildNodes)
	assert.Equal(t, tree.DoctypeNode, doc.ChildNodes[0].Type)
	assert.Equal(t, "html", doc.ChildNodes[0].Data)
}

func TestEntitiesDecodedOnParse(t *testing.T) {
	frag, err := New().ParseFragment("<p>fish &amp; chips</p>")
	require.NoError(t, err)

	got, err := frag.ChildNodes[0].Text()
	require.NoError(t, err)
	assert.Equal(t, "fish & chips", got)
}
