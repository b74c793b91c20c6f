package layout

import "mindgrid/mindmap"

// Geometry is the computed box for one visible node.
type Geometry struct {
	Position mindmap.Point // top-left corner
	Size     mindmap.Point // width, height
}

// Bounds returns the node's bounding rectangle.
func (g Geometry) Bounds() Bounds {
	return Bounds{
		Min: g.Position,
		Max: mindmap.Point{X: g.Position.X + g.Size.X, Y: g.Position.Y + g.Size.Y},
	}
}

// Center returns the center point of the box.
func (g Geometry) Center() mindmap.Point {
	return mindmap.Point{X: g.Position.X + g.Size.X/2, Y: g.Position.Y + g.Size.Y/2}
}

// Bounds represents a rectangular area.
type Bounds struct {
	Min, Max mindmap.Point
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p mindmap.Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Intersects reports whether two rectangles overlap.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Min.X < o.Max.X && o.Min.X < b.Max.X &&
		b.Min.Y < o.Max.Y && o.Min.Y < b.Max.Y
}

// Width returns the width of the bounds.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// boundsAround returns a square of the given side length centered on p.
func boundsAround(p mindmap.Point, side float64) Bounds {
	half := side / 2
	return Bounds{
		Min: mindmap.Point{X: p.X - half, Y: p.Y - half},
		Max: mindmap.Point{X: p.X + half, Y: p.Y + half},
	}
}
