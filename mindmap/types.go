// Package mindmap contains the fundamental types used throughout the mindgrid engine.
package mindmap

// Point represents a 2D coordinate or offset in canvas space.
type Point struct {
	X, Y float64
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Direction selects how subtrees are arranged around the root.
type Direction int

const (
	// DirectionBoth places the root at the center with subtrees
	// alternating right/left by sibling index.
	DirectionBoth Direction = iota
	// DirectionRight places every subtree to the right of the root.
	DirectionRight
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case DirectionBoth:
		return "Both"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Node is one topic in the tree. Children are owned exclusively: a node
// appears under exactly one parent, and ids are unique within a document.
type Node struct {
	ID          string   `json:"id"`
	Topic       string   `json:"topic"`
	Children    []*Node  `json:"children,omitempty"`
	Expanded    bool     `json:"expanded"`
	Style       string   `json:"style,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Icons       []string `json:"icons,omitempty"`
	HyperLink   string   `json:"hyperLink,omitempty"`
	BranchColor string   `json:"branchColor,omitempty"`
}

// Clone creates a deep copy of the node and its subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{
		ID:          n.ID,
		Topic:       n.Topic,
		Expanded:    n.Expanded,
		Style:       n.Style,
		HyperLink:   n.HyperLink,
		BranchColor: n.BranchColor,
	}
	if n.Tags != nil {
		clone.Tags = make([]string, len(n.Tags))
		copy(clone.Tags, n.Tags)
	}
	if n.Icons != nil {
		clone.Icons = make([]string, len(n.Icons))
		copy(clone.Icons, n.Icons)
	}
	if n.Children != nil {
		clone.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return clone
}

// Arrow is a cross-tree connection between two nodes. The delta points
// are control-point offsets relative to each endpoint's anchor.
type Arrow struct {
	ID            string `json:"id"`
	From          string `json:"fromNodeId"`
	To            string `json:"toNodeId"`
	Label         string `json:"label,omitempty"`
	Bidirectional bool   `json:"bidirectional,omitempty"`
	Delta1        Point  `json:"controlPointOffset1"`
	Delta2        Point  `json:"controlPointOffset2"`
	Style         string `json:"style,omitempty"`
}

// Summary is a labeled bracket over a contiguous run of one parent's
// children. Start and End are inclusive indices into the parent's
// children at the time the summary is valid.
type Summary struct {
	ID       string `json:"id"`
	ParentID string `json:"parentNodeId"`
	Start    int    `json:"startIndex"`
	End      int    `json:"endIndex"`
	Label    string `json:"label,omitempty"`
}

// Document is one immutable snapshot of the whole map: the tree plus
// arrows, summaries and the layout direction. Mutations produce a new
// Document; holders of an old snapshot keep observing the old tree.
type Document struct {
	Root      *Node     `json:"root"`
	Arrows    []Arrow   `json:"arrows,omitempty"`
	Summaries []Summary `json:"summaries,omitempty"`
	Direction Direction `json:"direction"`
}

// Clone creates a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := &Document{
		Root:      d.Root.Clone(),
		Direction: d.Direction,
	}
	if d.Arrows != nil {
		clone.Arrows = make([]Arrow, len(d.Arrows))
		copy(clone.Arrows, d.Arrows)
	}
	if d.Summaries != nil {
		clone.Summaries = make([]Summary, len(d.Summaries))
		copy(clone.Summaries, d.Summaries)
	}
	return clone
}

// Arrow returns the arrow with the given id, or nil.
func (d *Document) Arrow(id string) *Arrow {
	for i := range d.Arrows {
		if d.Arrows[i].ID == id {
			return &d.Arrows[i]
		}
	}
	return nil
}

// Summary returns the summary with the given id, or nil.
func (d *Document) Summary(id string) *Summary {
	for i := range d.Summaries {
		if d.Summaries[i].ID == id {
			return &d.Summaries[i]
		}
	}
	return nil
}
