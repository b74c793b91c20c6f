// Package controller is the facade sequencing the mutation engine,
// selection manager, history and layout per user gesture. Rendering
// layers consume it read-only through Layout results and the event
// stream.
package controller

import (
	"mindgrid/history"
	"mindgrid/interaction"
	"mindgrid/layout"
	"mindgrid/mindmap"
	"mindgrid/selection"
	"mindgrid/tree"
)

// Controller owns the current document snapshot and every state
// machine around it. It is single-threaded by design: each operation
// is a plain call that completes before returning.
type Controller struct {
	cfg    Config
	doc    *mindmap.Document
	idx    *mindmap.Index
	sel    *selection.Manager
	hist   *history.History
	engine *layout.Engine
	view   *interaction.Viewport
	drag   *interaction.Drag

	listeners []func(Event)
	editingID string
}

// New creates a controller around a fresh single-root document.
func New(cfg Config, metrics layout.Metrics) *Controller {
	return NewWithDocument(cfg, metrics, tree.NewDocument("Central Topic"))
}

// NewWithDocument creates a controller around an existing document.
func NewWithDocument(cfg Config, metrics layout.Metrics, doc *mindmap.Document) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{
		cfg:    cfg,
		doc:    doc,
		idx:    mindmap.NewIndex(doc),
		sel:    selection.NewManager(),
		hist:   history.New(cfg.HistoryDepth),
		engine: layout.NewEngine(metrics),
		view:   interaction.NewViewport(cfg.MinZoom, cfg.MaxZoom),
		drag:   interaction.NewDrag(),
	}
	c.hist.SetRecording(cfg.UndoEnabled)
	c.sel.OnSelectionChanged(func(ids []string) {
		c.emit(Event{Kind: EventSelectionChanged, NodeIDs: ids})
	})
	c.sel.OnFocusChanged(func(id string) {
		c.emit(Event{Kind: EventFocusChanged, FocusID: id})
	})
	return c
}

// Subscribe registers an event listener.
func (c *Controller) Subscribe(fn func(Event)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) emit(ev Event) {
	for _, fn := range c.listeners {
		fn(ev)
	}
}

// Config returns the validated configuration in effect.
func (c *Controller) Config() Config { return c.cfg }

// Document returns the current snapshot. Callers must treat it as
// immutable; mutations go through controller operations.
func (c *Controller) Document() *mindmap.Document { return c.doc }

// Index returns the id index for the current snapshot.
func (c *Controller) Index() *mindmap.Index { return c.idx }

// Selection returns the selection/focus manager.
func (c *Controller) Selection() *selection.Manager { return c.sel }

// Viewport returns the zoom/pan transform.
func (c *Controller) Viewport() *interaction.Viewport { return c.view }

// CanUndo reports whether an undo is available.
func (c *Controller) CanUndo() bool { return c.hist.CanUndo() }

// CanRedo reports whether a redo is available.
func (c *Controller) CanRedo() bool { return c.hist.CanRedo() }

// Layout computes geometry for the current snapshot. While a node is
// focused it becomes the traversal root; structural operations keep
// working on the full tree regardless.
func (c *Controller) Layout() (*layout.Result, error) {
	if focus := c.sel.Focused(); focus != "" {
		return c.engine.LayoutFrom(c.doc, focus)
	}
	return c.engine.Layout(c.doc)
}

// install replaces the snapshot and rebuilds derived state, dropping
// selected ids that no longer exist.
func (c *Controller) install(doc *mindmap.Document) {
	c.doc = doc
	c.idx = mindmap.NewIndex(doc)
	c.sel.Prune(c.idx)
	c.sel.PruneArrow(doc)
}

// apply runs a recordable mutation: capture the before state, install
// the result, checkpoint before/after as one atomic unit.
func (c *Controller) apply(mutate func(*mindmap.Document) (*mindmap.Document, error)) error {
	before := history.State{Doc: c.doc, Sel: c.sel.Snapshot()}
	next, err := mutate(c.doc)
	if err != nil {
		return err
	}
	c.install(next)
	c.hist.Record(before, history.State{Doc: next, Sel: c.sel.Snapshot()})
	return nil
}

// AddChild appends a new node under parentID and returns its id.
func (c *Controller) AddChild(parentID, topic string) (string, error) {
	var childID string
	err := c.apply(func(doc *mindmap.Document) (*mindmap.Document, error) {
		next, id, err := tree.AddChild(doc, parentID, topic)
		childID = id
		return next, err
	})
	if err != nil {
		return "", err
	}
	c.emit(Event{Kind: EventNodeAdded, NodeID: childID, ParentID: parentID})
	return childID, nil
}

// AddSibling inserts a new node after referenceID and returns its id.
func (c *Controller) AddSibling(referenceID, topic string) (string, error) {
	var sibID string
	err := c.apply(func(doc *mindmap.Document) (*mindmap.Document, error) {
		next, id, err := tree.AddSibling(doc, referenceID, topic)
		sibID = id
		return next, err
	})
	if err != nil {
		return "", err
	}
	parentID, _ := c.idx.ParentID(sibID)
	c.emit(Event{Kind: EventNodeAdded, NodeID: sibID, ParentID: parentID, Sibling: true})
	return sibID, nil
}

// RemoveNode deletes the node and its subtree; any selection on
// removed ids is cleared automatically.
func (c *Controller) RemoveNode(nodeID string) error {
	err := c.apply(func(doc *mindmap.Document) (*mindmap.Document, error) {
		return tree.RemoveNode(doc, nodeID)
	})
	if err != nil {
		return err
	}
	c.emit(Event{Kind: EventNodeRemoved, NodeID: nodeID})
	return nil
}

// MoveNode reparents or reorders a node. A true no-op (same parent,
// same position) changes nothing and emits nothing.
func (c *Controller) MoveNode(nodeID, newParentID string, index int) error {
	before := history.State{Doc: c.doc, Sel: c.sel.Snapshot()}
	res, err := tree.MoveNode(c.doc, nodeID, newParentID, index)
	if err != nil {
		return err
	}
	if res.NoOp {
		return nil
	}
	c.install(res.Doc)
	c.hist.Record(before, history.State{Doc: res.Doc, Sel: c.sel.Snapshot()})
	c.emit(Event{
		Kind:        EventNodeMoved,
		NodeID:      nodeID,
		ParentID:    res.NewParentID,
		OldParentID: res.OldParentID,
		Reorder:     res.Reorder,
	})
	return nil
}

// BeginEdit marks a node as being text-edited and emits the event.
// No mutation happens until FinishEdit.
func (c *Controller) BeginEdit(nodeID string) error {
	node := c.idx.Node(nodeID)
	if node == nil {
		return &mindmap.NodeNotFoundError{ID: nodeID}
	}
	c.editingID = nodeID
	c.emit(Event{Kind: EventEditStarted, NodeID: nodeID, Topic: node.Topic})
	return nil
}

// EditingNode returns the id under text edit, or "".
func (c *Controller) EditingNode() string { return c.editingID }

// FinishEdit commits new topic text for the node under edit. An
// unchanged topic still ends the edit but records and emits nothing.
func (c *Controller) FinishEdit(nodeID, topic string) error {
	c.editingID = ""
	node := c.idx.Node(nodeID)
	if node == nil {
		return &mindmap.NodeNotFoundError{ID: nodeID}
	}
	if node.Topic == topic {
		return nil
	}
	err := c.apply(func(doc *mindmap.Document) (*mindmap.Document, error) {
		return tree.UpdateTopic(doc, nodeID, topic)
	})
	if err != nil {
		return err
	}
	c.emit(Event{Kind: EventEditFinished, NodeID: nodeID, Topic: topic})
	return nil
}

// SetExpanded sets a node's expand flag. Setting the current value is
// a no-op: nothing recorded, nothing emitted.
func (c *Controller) SetExpanded(nodeID string, expanded bool) error {
	node := c.idx.Node(nodeID)
	if node == nil {
		return &mindmap.NodeNotFoundError{ID: nodeID}
	}
	if node.Expanded == expanded {
		return nil
	}
	err := c.apply(func(doc *mindmap.Document) (*mindmap.Document, error) {
		return tree.SetExpanded(doc, nodeID, expanded)
	})
	if err != nil {
		return err
	}
	c.emit(Event{Kind: EventExpandChanged, NodeID: nodeID, Expanded: expanded})
	return nil
}

// ToggleExpand flips a node's expand flag.
func (c *Controller) ToggleExpand(nodeID string) error {
	node := c.idx.Node(nodeID)
	if node == nil {
		return &mindmap.NodeNotFoundError{ID: nodeID}
	}
	return c.SetExpanded(nodeID, !node.Expanded)
}

// FocusNode enters focus mode on the node, clearing the selection.
func (c *Controller) FocusNode(nodeID string) error {
	return c.sel.Focus(c.idx, nodeID)
}

// ExitFocus leaves focus mode.
func (c *Controller) ExitFocus() {
	c.sel.ExitFocus()
}

// AddArrow creates a cross-tree arrow and returns its id.
func (c *Controller) AddArrow(fromID, toID, label string) (string, error) {
	var arrowID string
	err := c.apply(func(doc *mindmap.Document) (*mindmap.Document, error) {
		next, id, err := tree.AddArrow(doc, fromID, toID, label)
		arrowID = id
		return next, err
	})
	if err != nil {
		return "", err
	}
	c.emit(Event{Kind: EventArrowAdded, ArrowID: arrowID})
	return arrowID, nil
}

// RemoveArrow deletes an arrow.
func (c *Controller) RemoveArrow(arrowID string) error {
	err := c.apply(func(doc *mindmap.Document) (*mindmap.Document, error) {
		return tree.RemoveArrow(doc, arrowID)
	})
	if err != nil {
		return err
	}
	c.emit(Event{Kind: EventArrowRemoved, ArrowID: arrowID})
	return nil
}

// AddSummary brackets a contiguous child range of a parent.
func (c *Controller) AddSummary(parentID string, start, end int, label string) (string, error) {
	var sumID string
	err := c.apply(func(doc *mindmap.Document) (*mindmap.Document, error) {
		next, id, err := tree.AddSummary(doc, parentID, start, end, label)
		sumID = id
		return next, err
	})
	if err != nil {
		return "", err
	}
	c.emit(Event{Kind: EventSummaryAdded, SummaryID: sumID, ParentID: parentID})
	return sumID, nil
}

// RemoveSummary deletes a summary.
func (c *Controller) RemoveSummary(summaryID string) error {
	err := c.apply(func(doc *mindmap.Document) (*mindmap.Document, error) {
		return tree.RemoveSummary(doc, summaryID)
	})
	if err != nil {
		return err
	}
	c.emit(Event{Kind: EventSummaryRemoved, SummaryID: summaryID})
	return nil
}

// SummaryFromSelection brackets the currently selected nodes. All
// selected nodes must share one parent and form a contiguous sibling
// run; the bracket spans that run regardless of selection order.
func (c *Controller) SummaryFromSelection(label string) (string, error) {
	ids := c.sel.SelectedNodes()
	if len(ids) == 0 {
		return "", &mindmap.InvalidParentError{Reason: "selection is empty"}
	}
	parentID, ok := c.idx.ParentID(ids[0])
	if !ok {
		return "", &mindmap.InvalidParentError{Reason: "the root cannot be summarized"}
	}
	start, end := -1, -1
	for _, id := range ids {
		pid, ok := c.idx.ParentID(id)
		if !ok || pid != parentID {
			return "", &mindmap.InvalidParentError{Reason: "selected nodes do not share a parent"}
		}
		pos := c.idx.ChildIndex(id)
		if start == -1 || pos < start {
			start = pos
		}
		if pos > end {
			end = pos
		}
	}
	// Child indices are distinct, so a span wider than the selection
	// means an unselected sibling sits inside it.
	if end-start+1 != len(ids) {
		return "", &mindmap.InvalidParentError{Reason: "selected nodes are not contiguous siblings"}
	}
	return c.AddSummary(parentID, start, end, label)
}

// ActivateHyperlink emits the hyperlink event for a node that carries
// one; a node without a link is a silent no-op.
func (c *Controller) ActivateHyperlink(nodeID string) error {
	node := c.idx.Node(nodeID)
	if node == nil {
		return &mindmap.NodeNotFoundError{ID: nodeID}
	}
	if node.HyperLink == "" {
		return nil
	}
	c.emit(Event{Kind: EventHyperlinkActivated, NodeID: nodeID, URL: node.HyperLink})
	return nil
}

// Undo restores the previous document and selection atomically. Any
// pending edit is abandoned. Returns false with no state change when
// the history is empty.
func (c *Controller) Undo() bool {
	state, ok := c.hist.Undo()
	if !ok {
		return false
	}
	c.editingID = ""
	c.doc = state.Doc
	c.idx = mindmap.NewIndex(state.Doc)
	c.sel.Restore(state.Sel)
	c.emit(Event{Kind: EventDocumentReplaced})
	return true
}

// Redo re-applies the most recently undone mutation.
func (c *Controller) Redo() bool {
	state, ok := c.hist.Redo()
	if !ok {
		return false
	}
	c.editingID = ""
	c.doc = state.Doc
	c.idx = mindmap.NewIndex(state.Doc)
	c.sel.Restore(state.Sel)
	c.emit(Event{Kind: EventDocumentReplaced})
	return true
}

// LoadDocument replaces the document wholesale, clearing history,
// selection, focus and any pending edit.
func (c *Controller) LoadDocument(doc *mindmap.Document) error {
	if doc == nil || doc.Root == nil {
		return &mindmap.NodeNotFoundError{ID: ""}
	}
	c.editingID = ""
	c.sel.ExitFocus()
	c.sel.Clear()
	c.install(doc)
	c.hist.Clear()
	c.emit(Event{Kind: EventDocumentReplaced})
	return nil
}

// SetZoom clamps and applies a zoom level, emitting only on change.
func (c *Controller) SetZoom(z float64) {
	if c.view.SetZoom(z) {
		c.emit(Event{Kind: EventZoomChanged, Zoom: c.view.Zoom})
	}
}

// ZoomAt zooms by a factor anchored at a screen point.
func (c *Controller) ZoomAt(factor float64, screen mindmap.Point) {
	if c.view.ZoomAt(factor, screen) {
		c.emit(Event{Kind: EventZoomChanged, Zoom: c.view.Zoom})
	}
}
