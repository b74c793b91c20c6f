// Package layout turns a document snapshot into absolute geometry for
// every visible node. The engine is pure: equal input yields equal
// output, and the input document is never modified.
package layout

import "mindgrid/mindmap"

// Side records which side of the root a subtree was placed on.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

// Engine computes node geometry from a document snapshot.
type Engine struct {
	Metrics Metrics
}

// NewEngine creates an engine with the given metrics.
func NewEngine(m Metrics) *Engine {
	if m.Measurer == nil {
		m.Measurer = RuneMetrics{CellWidth: 1, CellHeight: 1}
	}
	return &Engine{Metrics: m}
}

// Layout computes geometry for the whole document, honoring each
// node's expand flag: a collapsed node is laid out but its descendants
// are absent from the result entirely.
func (e *Engine) Layout(doc *mindmap.Document) (*Result, error) {
	if doc == nil || doc.Root == nil {
		return nil, &mindmap.NodeNotFoundError{ID: ""}
	}
	return e.layoutFrom(doc, doc.Root), nil
}

// LayoutFrom computes a focus-mode layout with rootID treated as the
// root: its ancestors and siblings are simply never traversed. All
// other rules (expand state, direction) are unchanged.
func (e *Engine) LayoutFrom(doc *mindmap.Document, rootID string) (*Result, error) {
	if doc == nil || doc.Root == nil {
		return nil, &mindmap.NodeNotFoundError{ID: rootID}
	}
	idx := mindmap.NewIndex(doc)
	root := idx.Node(rootID)
	if root == nil {
		return nil, &mindmap.NodeNotFoundError{ID: rootID}
	}
	return e.layoutFrom(doc, root), nil
}

// visibleChildren applies the collapse filter.
func visibleChildren(n *mindmap.Node) []*mindmap.Node {
	if !n.Expanded {
		return nil
	}
	return n.Children
}

// extentItem drives the iterative post-order extent pass.
type extentItem struct {
	node    *mindmap.Node
	visited bool
}

// placeItem drives the iterative pre-order placement pass.
type placeItem struct {
	node *mindmap.Node
	side Side
	x    float64 // leading edge (left edge on the right side, right edge on the left side)
	cy   float64 // vertical center of the subtree's allocated band
}

func (e *Engine) layoutFrom(doc *mindmap.Document, root *mindmap.Node) *Result {
	m := e.Metrics
	res := &Result{
		geos:    make(map[string]Geometry),
		sides:   make(map[string]Side),
		doc:     doc,
		idx:     mindmap.NewIndex(doc),
		metrics: m,
	}

	// Post-order pass: subtree extents (total vertical span including
	// the gaps between sibling subtrees), explicit stack.
	sizeW := make(map[string]float64)
	sizeH := make(map[string]float64)
	extent := make(map[string]float64)
	stack := []extentItem{{node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children := visibleChildren(it.node)
		if !it.visited {
			stack = append(stack, extentItem{node: it.node, visited: true})
			for _, c := range children {
				stack = append(stack, extentItem{node: c})
			}
			continue
		}
		w, h := m.nodeSize(it.node.Topic)
		sizeW[it.node.ID] = w
		sizeH[it.node.ID] = h
		total := 0.0
		for i, c := range children {
			total += extent[c.ID]
			if i > 0 {
				total += m.VSpacing
			}
		}
		if total < h {
			total = h
		}
		extent[it.node.ID] = total
	}

	// Pre-order pass: positions. The root sits at the origin with its
	// subtree band centered on y=0; children stack within the band
	// allocated by the extent pass, so sibling subtrees never overlap.
	rootW, rootH := sizeW[root.ID], sizeH[root.ID]
	res.place(root.ID, Geometry{
		Position: mindmap.Point{X: -rootW / 2, Y: -rootH / 2},
		Size:     mindmap.Point{X: rootW, Y: rootH},
	}, SideRight)

	rootChildren := visibleChildren(root)
	var right, left []*mindmap.Node
	if doc.Direction == mindmap.DirectionBoth {
		for i, c := range rootChildren {
			if i%2 == 0 {
				right = append(right, c)
			} else {
				left = append(left, c)
			}
		}
	} else {
		right = rootChildren
	}

	var place []placeItem
	queueSide := func(children []*mindmap.Node, side Side) {
		if len(children) == 0 {
			return
		}
		total := 0.0
		for i, c := range children {
			total += extent[c.ID]
			if i > 0 {
				total += m.VSpacing
			}
		}
		x := rootW/2 + m.HSpacing
		if side == SideLeft {
			x = -rootW/2 - m.HSpacing
		}
		top := -total / 2
		for _, c := range children {
			place = append(place, placeItem{node: c, side: side, x: x, cy: top + extent[c.ID]/2})
			top += extent[c.ID] + m.VSpacing
		}
	}
	queueSide(right, SideRight)
	queueSide(left, SideLeft)

	for len(place) > 0 {
		it := place[len(place)-1]
		place = place[:len(place)-1]
		w, h := sizeW[it.node.ID], sizeH[it.node.ID]
		var geo Geometry
		if it.side == SideRight {
			geo = Geometry{
				Position: mindmap.Point{X: it.x, Y: it.cy - h/2},
				Size:     mindmap.Point{X: w, Y: h},
			}
		} else {
			geo = Geometry{
				Position: mindmap.Point{X: it.x - w, Y: it.cy - h/2},
				Size:     mindmap.Point{X: w, Y: h},
			}
		}
		res.place(it.node.ID, geo, it.side)

		children := visibleChildren(it.node)
		if len(children) == 0 {
			continue
		}
		total := 0.0
		for i, c := range children {
			total += extent[c.ID]
			if i > 0 {
				total += m.VSpacing
			}
		}
		childX := geo.Position.X + w + m.HSpacing
		if it.side == SideLeft {
			childX = geo.Position.X - m.HSpacing
		}
		top := it.cy - total/2
		for _, c := range children {
			place = append(place, placeItem{node: c, side: it.side, x: childX, cy: top + extent[c.ID]/2})
			top += extent[c.ID] + m.VSpacing
		}
	}

	return res
}
