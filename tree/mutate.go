package tree

// Prepend attaches child as the first entry of p's child list and returns
// child. The child is not detached from a previous parent first;
// re-parenting without an explicit Remove leaves it in two child lists.
func (p *Node) Prepend(child *Node) *Node {
	child.ParentNode = p
	p.ChildNodes.WedgeIn(0, child)
	return child
}

// Append attaches child as the last entry of p's child list and returns
// child. Same re-parenting caveat as Prepend.
func (p *Node) Append(child *Node) *Node {
	child.ParentNode = p
	p.ChildNodes = append(p.ChildNodes, child)
	return child
}

// Replace swaps n for repl at n's exact position in its parent's child
// list, comparing by identity. It reports false when n has no parent or is
// not present in the parent's list. On success n comes out detached with
// its parent reference cleared.
func (n *Node) Replace(repl *Node) bool {
	p := n.ParentNode
	if p == nil {
		return false
	}
	i := p.ChildNodes.Index(n)
	if i < 0 {
		return false
	}
	p.ChildNodes[i] = repl
	repl.ParentNode = p
	n.ParentNode = nil
	return true
}

// Remove detaches n from its parent's child list, comparing by identity,
// and returns n. Already-detached nodes are a no-op. The parent reference
// is cleared so a removed node reads as detached.
func (n *Node) Remove() *Node {
	p := n.ParentNode
	if p == nil {
		return n
	}
	if i := p.ChildNodes.Index(n); i >= 0 {
		p.ChildNodes.Remove(i)
	}
	n.ParentNode = nil
	return n
}
