package tree

// Flatten returns the pre-order enumeration of the given roots: each root,
// then its descendants in child-list order. The result is a fresh slice on
// every call. Cyclic trees are not detected and will not terminate.
func Flatten(roots ...*Node) NodeList {
	out := make(NodeList, 0, len(roots))

	// Explicit stack instead of recursion so deep trees cannot exhaust
	// the call stack.
	stack := make(NodeList, len(roots))
	for i := range roots {
		stack[len(roots)-1-i] = roots[i]
	}
	for len(stack) > 0 {
		n := stack.Pop()
		if n == nil {
			continue
		}
		out = append(out, n)
		for i := len(n.ChildNodes) - 1; i >= 0; i-- {
			stack = append(stack, n.ChildNodes[i])
		}
	}
	return out
}
