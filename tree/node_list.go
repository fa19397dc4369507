package tree

// NodeList is the owning, ordered child collection of a container node.
// Order is significant: it is exactly serialization order.
type NodeList []*Node

// Index returns the position of n in the list, comparing by identity, or
// -1 when n is not present.
func (l NodeList) Index(n *Node) int {
	for i := range l {
		if l[i] == n {
			return i
		}
	}
	return -1
}

// Remove splices out the node at i and returns it. An out-of-range index
// is a no-op returning nil.
func (l *NodeList) Remove(i int) *Node {
	if i < 0 || i >= len(*l) {
		return nil
	}
	node := (*l)[i]
	*l = append((*l)[:i], (*l)[i+1:]...)
	return node
}

// WedgeIn splices n into position i, shifting the rest right. An index at
// or past the end appends.
func (l *NodeList) WedgeIn(i int, n *Node) {
	if i < 0 {
		return
	}
	if i >= len(*l) {
		*l = append(*l, n)
		return
	}
	*l = append((*l)[:i+1], (*l)[i:]...)
	(*l)[i] = n
}

// Pop removes and returns the last node, or nil on an empty list.
func (l *NodeList) Pop() *Node {
	if len(*l) == 0 {
		return nil
	}
	popped := (*l)[len(*l)-1]
	*l = (*l)[:len(*l)-1]
	return popped
}
