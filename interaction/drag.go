package interaction

import (
	"mindgrid/layout"
	"mindgrid/mindmap"
)

// Drag tracks an in-flight node drag. It only finds drop targets;
// the actual reparent is the caller's job, keeping gesture tracking
// and structural mutation decoupled.
type Drag struct {
	nodeID   string
	pointer  mindmap.Point
	targetID string

	targetListeners []func(string)
}

// NewDrag creates an idle drag tracker.
func NewDrag() *Drag {
	return &Drag{}
}

// OnTargetChanged registers a listener invoked whenever the candidate
// drop target changes, including changes to "".
func (d *Drag) OnTargetChanged(fn func(targetID string)) {
	d.targetListeners = append(d.targetListeners, fn)
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.nodeID != ""
}

// NodeID returns the dragged node id, or "".
func (d *Drag) NodeID() string {
	return d.nodeID
}

// Target returns the current candidate drop target, or "".
func (d *Drag) Target() string {
	return d.targetID
}

// Start begins dragging nodeID from the given screen position,
// clearing any previous drop target.
func (d *Drag) Start(nodeID string, screen mindmap.Point) {
	d.nodeID = nodeID
	d.pointer = screen
	d.setTarget("")
}

// Update inverse-transforms the pointer into canvas space and hit-tests
// against the layout, excluding the dragged node itself and every node
// the cycle check would reject: the node's own descendants. The target
// listener fires only when the candidate actually changes.
func (d *Drag) Update(screen mindmap.Point, res *layout.Result, view *Viewport, idx *mindmap.Index) {
	if !d.Active() {
		return
	}
	d.pointer = screen
	canvas := view.ToCanvas(screen)
	hit := res.NodeAt(canvas)
	if hit == d.nodeID || (hit != "" && idx.IsAncestorOf(d.nodeID, hit)) {
		hit = ""
	}
	d.setTarget(hit)
}

// End returns the last valid drop target (or "") and clears all drag
// state. Not finding a target is a normal outcome, not an error.
func (d *Drag) End() string {
	target := d.targetID
	d.nodeID = ""
	d.targetID = ""
	d.pointer = mindmap.Point{}
	return target
}

// Cancel clears all drag state without returning a target.
func (d *Drag) Cancel() {
	d.nodeID = ""
	d.targetID = ""
	d.pointer = mindmap.Point{}
}

func (d *Drag) setTarget(id string) {
	if id == d.targetID {
		return
	}
	d.targetID = id
	for _, fn := range d.targetListeners {
		fn(id)
	}
}
