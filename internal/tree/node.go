package tree

// Node is one note or folder in the browsed tree.
type Node struct {
	ID       string
	Title    string
	Icon     string
	Folder   bool
	Expanded bool

	Parent   *Node
	Children []*Node
}

// IsFolder reports whether the node is marked as a folder or has children.
func (n *Node) IsFolder() bool {
	return n.Folder || len(n.Children) > 0
}

// Level returns the depth of the node. Top-level nodes are at level 1.
func (n *Node) Level() int {
	level := 1
	for p := n.Parent; p != nil; p = p.Parent {
		level++
	}
	return level
}

// Add appends child and links it back to n.
func (n *Node) Add(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Ancestors returns the parents of n, nearest first.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// Link sets parent pointers below roots. Roots get a nil parent.
func Link(roots []*Node) {
	for _, root := range roots {
		root.Parent = nil
		linkChildren(root)
	}
}

func linkChildren(n *Node) {
	for _, child := range n.Children {
		child.Parent = n
		linkChildren(child)
	}
}

// Walk visits every node in document order until fn returns false. It
// reports whether the walk ran to completion.
func Walk(roots []*Node, fn func(*Node) bool) bool {
	for _, root := range roots {
		if !walk(root, fn) {
			return false
		}
	}
	return true
}

func walk(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes below and including roots.
func Count(roots []*Node) int {
	total := 0
	Walk(roots, func(*Node) bool {
		total++
		return true
	})
	return total
}
