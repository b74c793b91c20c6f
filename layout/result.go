package layout

import (
	"math"

	"mindgrid/mindmap"
)

// Result is the geometry computed for one snapshot. It is derived
// state: never mutated independently of the document it came from.
type Result struct {
	geos    map[string]Geometry
	sides   map[string]Side
	order   []string // deterministic placement order
	doc     *mindmap.Document
	idx     *mindmap.Index
	metrics Metrics
}

func (r *Result) place(id string, geo Geometry, side Side) {
	r.geos[id] = geo
	r.sides[id] = side
	r.order = append(r.order, id)
}

// Geometry returns the box for a visible node.
func (r *Result) Geometry(id string) (Geometry, bool) {
	g, ok := r.geos[id]
	return g, ok
}

// Side returns which side of the root the node was placed on.
func (r *Result) Side(id string) (Side, bool) {
	s, ok := r.sides[id]
	return s, ok
}

// IDs returns every visible node id in placement order.
func (r *Result) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of visible nodes.
func (r *Result) Len() int {
	return len(r.order)
}

// Bounds returns the extent of the whole laid-out map.
func (r *Result) Bounds() Bounds {
	var b Bounds
	first := true
	for _, id := range r.order {
		gb := r.geos[id].Bounds()
		if first {
			b = gb
			first = false
			continue
		}
		if gb.Min.X < b.Min.X {
			b.Min.X = gb.Min.X
		}
		if gb.Min.Y < b.Min.Y {
			b.Min.Y = gb.Min.Y
		}
		if gb.Max.X > b.Max.X {
			b.Max.X = gb.Max.X
		}
		if gb.Max.Y > b.Max.Y {
			b.Max.Y = gb.Max.Y
		}
	}
	return b
}

// NodeAt returns the id of the visible node whose box contains the
// point, or "". Later-placed nodes win so an overlap resolves to the
// node drawn on top.
func (r *Result) NodeAt(p mindmap.Point) string {
	for i := len(r.order) - 1; i >= 0; i-- {
		id := r.order[i]
		if r.geos[id].Bounds().Contains(p) {
			return id
		}
	}
	return ""
}

// NodesIn returns the ids of every visible node whose box intersects
// the rectangle, in placement order. Used for marquee selection.
func (r *Result) NodesIn(rect Bounds) []string {
	var out []string
	for _, id := range r.order {
		if r.geos[id].Bounds().Intersects(rect) {
			out = append(out, id)
		}
	}
	return out
}

// ExpandIndicatorBounds returns the expand/collapse indicator box for
// the node: only defined for visible nodes with at least one child,
// positioned immediately outside the node's trailing edge and
// vertically centered on it.
func (r *Result) ExpandIndicatorBounds(id string) (Bounds, bool) {
	geo, ok := r.geos[id]
	if !ok {
		return Bounds{}, false
	}
	node := r.idx.Node(id)
	if node == nil || len(node.Children) == 0 {
		return Bounds{}, false
	}
	size := r.metrics.IndicatorSize
	cy := geo.Position.Y + geo.Size.Y/2
	if r.sides[id] == SideLeft {
		return boundsAround(mindmap.Point{X: geo.Position.X - size/2, Y: cy}, size), true
	}
	return boundsAround(mindmap.Point{X: geo.Position.X + geo.Size.X + size/2, Y: cy}, size), true
}

// HyperlinkIndicatorBounds returns the hyperlink indicator box inside
// the node's top trailing corner; only defined for visible nodes that
// carry a hyperlink.
func (r *Result) HyperlinkIndicatorBounds(id string) (Bounds, bool) {
	geo, ok := r.geos[id]
	if !ok {
		return Bounds{}, false
	}
	node := r.idx.Node(id)
	if node == nil || node.HyperLink == "" {
		return Bounds{}, false
	}
	size := r.metrics.IndicatorSize
	if r.sides[id] == SideLeft {
		return boundsAround(mindmap.Point{X: geo.Position.X + size/2, Y: geo.Position.Y + size/2}, size), true
	}
	return boundsAround(mindmap.Point{X: geo.Position.X + geo.Size.X - size/2, Y: geo.Position.Y + size/2}, size), true
}

// ControlPointBounds returns the two control-point handle boxes for an
// arrow: each endpoint's anchor plus that arrow's relative offset.
// Only defined when both endpoints are present in this layout.
func (r *Result) ControlPointBounds(a mindmap.Arrow) (from, to Bounds, ok bool) {
	fromGeo, okFrom := r.geos[a.From]
	toGeo, okTo := r.geos[a.To]
	if !okFrom || !okTo {
		return Bounds{}, Bounds{}, false
	}
	size := r.metrics.IndicatorSize
	from = boundsAround(fromGeo.Center().Add(a.Delta1), size)
	to = boundsAround(toGeo.Center().Add(a.Delta2), size)
	return from, to, true
}

// ArrowNear reports the arrow whose straight-line segment between the
// endpoint centers passes within dist of the point, or "". Node bodies
// take precedence over arrow curves at the hit-test layer, not here.
func (r *Result) ArrowNear(p mindmap.Point, dist float64) string {
	for _, a := range r.doc.Arrows {
		fromGeo, okFrom := r.geos[a.From]
		toGeo, okTo := r.geos[a.To]
		if !okFrom || !okTo {
			continue
		}
		if segmentDistance(fromGeo.Center(), toGeo.Center(), p) <= dist {
			return a.ID
		}
	}
	return ""
}

// segmentDistance returns the distance from p to the segment ab.
func segmentDistance(a, b, p mindmap.Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	den := ab.X*ab.X + ab.Y*ab.Y
	t := 0.0
	if den > 0 {
		t = (ap.X*ab.X + ap.Y*ab.Y) / den
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	dx := a.X + t*ab.X - p.X
	dy := a.Y + t*ab.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}
