package dom

// Predicate matches nodes of a document tree.
type Predicate func(Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText Predicate = func(n Node) bool {
	_, ok := n.(*Text)
	return ok
}

// NodeIsElement returns a predicate to match elements with a given tag
// name. An empty tag name matches every element.
func NodeIsElement(tag string) Predicate {
	return func(n Node) bool {
		e, ok := n.(*Element)
		return ok && (tag == "" || e.TagName == tag)
	}
}

// AttributeIs returns a predicate to match elements with a given
// attribute value.
func AttributeIs(key, value string) Predicate {
	return func(n Node) bool {
		e, ok := n.(*Element)
		if !ok {
			return false
		}
		v, found := e.Attr(key).Get()
		return found && v == value
	}
}

// Walk traverses the tree under n depth-first, calling visit for every node
// together with its depth relative to n. If visit returns false, the
// children of the node are skipped.
func Walk(n Node, visit func(n Node, depth int) bool) {
	walk(n, 0, visit)
}

func walk(n Node, depth int, visit func(Node, int) bool) {
	if n == nil || !visit(n, depth) {
		return
	}
	if e, ok := n.(*Element); ok {
		for _, ch := range e.Children {
			walk(ch, depth+1, visit)
		}
	}
}

// FindAll collects all nodes under n (including n) matching pred,
// in document order.
func FindAll(n Node, pred Predicate) []Node {
	var found []Node
	Walk(n, func(node Node, _ int) bool {
		if pred(node) {
			found = append(found, node)
		}
		return true
	})
	return found
}
