package mindmap

// Index is a flat id lookup built once per snapshot. It replaces the
// recursive find-node/find-parent walks with O(1) queries and keeps the
// cycle check at O(depth). An Index is only valid for the snapshot it
// was built from.
type Index struct {
	nodes   map[string]*Node
	parents map[string]string // child id -> parent id; root absent
	rootID  string
}

// NewIndex builds an index over the document's tree using an explicit
// stack, so arbitrarily deep trees cannot exhaust the goroutine stack.
func NewIndex(doc *Document) *Index {
	idx := &Index{
		nodes:   make(map[string]*Node),
		parents: make(map[string]string),
	}
	if doc == nil || doc.Root == nil {
		return idx
	}
	idx.rootID = doc.Root.ID

	stack := []*Node{doc.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		idx.nodes[n.ID] = n
		for _, child := range n.Children {
			idx.parents[child.ID] = n.ID
			stack = append(stack, child)
		}
	}
	return idx
}

// RootID returns the id of the tree's root, or "" for an empty index.
func (idx *Index) RootID() string {
	return idx.rootID
}

// Node returns the node with the given id, or nil.
func (idx *Index) Node(id string) *Node {
	return idx.nodes[id]
}

// Contains reports whether the id exists in the snapshot.
func (idx *Index) Contains(id string) bool {
	_, ok := idx.nodes[id]
	return ok
}

// Parent returns the parent of the given node, or nil for the root or
// an unknown id.
func (idx *Index) Parent(id string) *Node {
	pid, ok := idx.parents[id]
	if !ok {
		return nil
	}
	return idx.nodes[pid]
}

// ParentID returns the parent id and whether the node has a parent.
func (idx *Index) ParentID(id string) (string, bool) {
	pid, ok := idx.parents[id]
	return pid, ok
}

// ChildIndex returns the position of the node among its parent's
// children, or -1 for the root or an unknown id.
func (idx *Index) ChildIndex(id string) int {
	parent := idx.Parent(id)
	if parent == nil {
		return -1
	}
	for i, child := range parent.Children {
		if child.ID == id {
			return i
		}
	}
	return -1
}

// IsAncestorOf reports whether ancestorID lies on the parent chain of
// id (a node is not its own ancestor). The walk is bounded by tree
// depth.
func (idx *Index) IsAncestorOf(ancestorID, id string) bool {
	cur := id
	for {
		pid, ok := idx.parents[cur]
		if !ok {
			return false
		}
		if pid == ancestorID {
			return true
		}
		cur = pid
	}
}

// AncestorChain returns the parent chain of the node from its immediate
// parent up to the root. Empty for the root itself.
func (idx *Index) AncestorChain(id string) []string {
	var chain []string
	cur := id
	for {
		pid, ok := idx.parents[cur]
		if !ok {
			return chain
		}
		chain = append(chain, pid)
		cur = pid
	}
}

// Descendants returns the ids of every node strictly below the given
// node, using an explicit stack.
func (idx *Index) Descendants(id string) []string {
	n := idx.nodes[id]
	if n == nil {
		return nil
	}
	var out []string
	stack := make([]*Node, 0, len(n.Children))
	stack = append(stack, n.Children...)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.ID)
		stack = append(stack, cur.Children...)
	}
	return out
}

// NodeCount returns the number of nodes in the snapshot.
func (idx *Index) NodeCount() int {
	return len(idx.nodes)
}

// IDs returns every node id in the snapshot, in no particular order.
func (idx *Index) IDs() []string {
	out := make([]string, 0, len(idx.nodes))
	for id := range idx.nodes {
		out = append(out, id)
	}
	return out
}
