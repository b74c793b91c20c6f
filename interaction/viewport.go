// Package interaction holds the pointer-side state machines: the
// zoom/pan viewport, the drag tracker and single-tap hit resolution.
// It never mutates the tree; on drop the caller decides whether to
// invoke the mutation engine.
package interaction

import "mindgrid/mindmap"

// Viewport maps between screen coordinates and canvas coordinates.
// screen = canvas*Zoom + Pan.
type Viewport struct {
	Zoom    float64
	Pan     mindmap.Point
	MinZoom float64
	MaxZoom float64
}

// NewViewport creates a viewport at zoom 1 with the given bounds.
func NewViewport(minZoom, maxZoom float64) *Viewport {
	return &Viewport{Zoom: 1, MinZoom: minZoom, MaxZoom: maxZoom}
}

// SetZoom clamps the zoom into the configured bounds and reports
// whether the effective zoom changed.
func (v *Viewport) SetZoom(z float64) bool {
	if z < v.MinZoom {
		z = v.MinZoom
	}
	if z > v.MaxZoom {
		z = v.MaxZoom
	}
	if z == v.Zoom {
		return false
	}
	v.Zoom = z
	return true
}

// ZoomAt applies a zoom factor while keeping the canvas point under
// the given screen point stationary.
func (v *Viewport) ZoomAt(factor float64, screen mindmap.Point) bool {
	anchor := v.ToCanvas(screen)
	if !v.SetZoom(v.Zoom * factor) {
		return false
	}
	v.Pan = mindmap.Point{
		X: screen.X - anchor.X*v.Zoom,
		Y: screen.Y - anchor.Y*v.Zoom,
	}
	return true
}

// PanBy shifts the viewport by a screen-space delta.
func (v *Viewport) PanBy(delta mindmap.Point) {
	v.Pan = v.Pan.Add(delta)
}

// ToCanvas inverse-transforms a screen point into canvas space.
func (v *Viewport) ToCanvas(screen mindmap.Point) mindmap.Point {
	return mindmap.Point{
		X: (screen.X - v.Pan.X) / v.Zoom,
		Y: (screen.Y - v.Pan.Y) / v.Zoom,
	}
}

// ToScreen transforms a canvas point into screen space.
func (v *Viewport) ToScreen(canvas mindmap.Point) mindmap.Point {
	return mindmap.Point{
		X: canvas.X*v.Zoom + v.Pan.X,
		Y: canvas.Y*v.Zoom + v.Pan.Y,
	}
}
