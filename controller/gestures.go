package controller

import (
	"mindgrid/interaction"
	"mindgrid/layout"
	"mindgrid/mindmap"
)

// Tap resolves a single tap with the fixed precedence (hyperlink >
// expand indicator > node body > arrow > empty) and fires the matching
// core operation. additive selects add-to-selection behavior for node
// hits; a tap on empty space clears the selection.
func (c *Controller) Tap(screen mindmap.Point, res *layout.Result, additive bool) interaction.Hit {
	hit := interaction.HitTest(screen, res, c.view)
	switch hit.Kind {
	case interaction.HitHyperlink:
		c.ActivateHyperlink(hit.ID)
	case interaction.HitExpandIndicator:
		c.ToggleExpand(hit.ID)
	case interaction.HitNodeBody:
		if additive {
			c.sel.Add(hit.ID)
		} else {
			c.sel.Select(hit.ID)
		}
	case interaction.HitArrow:
		c.sel.SelectArrow(hit.ID)
	default:
		c.sel.Clear()
	}
	return hit
}

// SelectRect replaces the selection with every node intersecting the
// screen-space rectangle (empty-space marquee).
func (c *Controller) SelectRect(a, b mindmap.Point, res *layout.Result) {
	c.sel.SetSelection(interaction.NodesInRect(a, b, res, c.view))
}

// StartDrag begins dragging a node.
func (c *Controller) StartDrag(nodeID string, screen mindmap.Point) error {
	if !c.idx.Contains(nodeID) {
		return &mindmap.NodeNotFoundError{ID: nodeID}
	}
	c.drag.Start(nodeID, screen)
	return nil
}

// UpdateDrag advances the drag against the given layout. Invalid drop
// targets (the dragged node and its descendants) are filtered by the
// same ancestor walk the mutation engine uses.
func (c *Controller) UpdateDrag(screen mindmap.Point, res *layout.Result) {
	c.drag.Update(screen, res, c.view, c.idx)
}

// EndDrag completes the drag. When a valid target was under the
// pointer the node is reparented there (appended to the target's
// children); otherwise nothing happens. Returns the target id or "".
func (c *Controller) EndDrag() (string, error) {
	nodeID := c.drag.NodeID()
	target := c.drag.End()
	if target == "" || nodeID == "" {
		return "", nil
	}
	if err := c.MoveNode(nodeID, target, -1); err != nil {
		return "", err
	}
	return target, nil
}

// CancelDrag abandons the drag without mutating anything.
func (c *Controller) CancelDrag() {
	c.drag.Cancel()
}

// DragTarget returns the current candidate drop target, or "".
func (c *Controller) DragTarget() string {
	return c.drag.Target()
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.drag.Active()
}
