package interaction

import (
	"mindgrid/layout"
	"mindgrid/mindmap"
)

// HitKind classifies what a single tap landed on.
type HitKind int

const (
	HitNone HitKind = iota
	HitHyperlink
	HitExpandIndicator
	HitNodeBody
	HitArrow
)

// String returns the kind name for display.
func (k HitKind) String() string {
	switch k {
	case HitHyperlink:
		return "hyperlink"
	case HitExpandIndicator:
		return "expand"
	case HitNodeBody:
		return "node"
	case HitArrow:
		return "arrow"
	default:
		return "none"
	}
}

// Hit is the resolved target of a tap.
type Hit struct {
	Kind HitKind
	ID   string // node id, or arrow id for HitArrow
}

// arrowHitSlop is how close, in canvas units, a tap must land to an
// arrow's curve to count as hitting it.
const arrowHitSlop = 1.5

// HitTest resolves a tap in screen space with the fixed precedence:
// hyperlink indicator > expand indicator > node body > arrow curve >
// empty space. A node body always wins over an arrow passing behind it.
func HitTest(screen mindmap.Point, res *layout.Result, view *Viewport) Hit {
	canvas := view.ToCanvas(screen)

	for _, id := range res.IDs() {
		if b, ok := res.HyperlinkIndicatorBounds(id); ok && b.Contains(canvas) {
			return Hit{Kind: HitHyperlink, ID: id}
		}
	}
	for _, id := range res.IDs() {
		if b, ok := res.ExpandIndicatorBounds(id); ok && b.Contains(canvas) {
			return Hit{Kind: HitExpandIndicator, ID: id}
		}
	}
	if id := res.NodeAt(canvas); id != "" {
		return Hit{Kind: HitNodeBody, ID: id}
	}
	if id := res.ArrowNear(canvas, arrowHitSlop); id != "" {
		return Hit{Kind: HitArrow, ID: id}
	}
	return Hit{}
}

// NodesInRect returns the ids of nodes intersecting a screen-space
// rectangle, for empty-space marquee selection. The corners may be
// given in any order.
func NodesInRect(a, b mindmap.Point, res *layout.Result, view *Viewport) []string {
	ca := view.ToCanvas(a)
	cb := view.ToCanvas(b)
	rect := layout.Bounds{
		Min: mindmap.Point{X: min(ca.X, cb.X), Y: min(ca.Y, cb.Y)},
		Max: mindmap.Point{X: max(ca.X, cb.X), Y: max(ca.Y, cb.Y)},
	}
	return res.NodesIn(rect)
}
