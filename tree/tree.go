// Package tree implements structural operations over a mind-map
// document. Every operation is snapshot-in/snapshot-out: the input
// document is cloned and never modified, so callers holding an older
// snapshot keep observing the pre-mutation tree.
package tree

import (
	"github.com/google/uuid"

	"mindgrid/mindmap"
)

func newID() string {
	return uuid.NewString()
}

// NewDocument creates a single-root document with the given topic.
func NewDocument(topic string) *mindmap.Document {
	return &mindmap.Document{
		Root: &mindmap.Node{
			ID:       newID(),
			Topic:    topic,
			Expanded: true,
		},
	}
}

// cloneAndIndex copies the document and builds an index over the copy.
func cloneAndIndex(doc *mindmap.Document) (*mindmap.Document, *mindmap.Index) {
	next := doc.Clone()
	return next, mindmap.NewIndex(next)
}

// AddChild appends a new node to the end of parentID's children and
// returns the new snapshot plus the new node's id.
func AddChild(doc *mindmap.Document, parentID, topic string) (*mindmap.Document, string, error) {
	next, idx := cloneAndIndex(doc)
	parent := idx.Node(parentID)
	if parent == nil {
		return nil, "", &mindmap.NodeNotFoundError{ID: parentID}
	}
	child := &mindmap.Node{
		ID:          newID(),
		Topic:       topic,
		Expanded:    true,
		BranchColor: childColor(idx, parent),
	}
	parent.Children = append(parent.Children, child)
	return next, child.ID, nil
}

// AddSibling inserts a new node immediately after referenceID among its
// parent's children. The root has no parent, so adding a sibling to it
// is a hard RootNodeError.
func AddSibling(doc *mindmap.Document, referenceID, topic string) (*mindmap.Document, string, error) {
	next, idx := cloneAndIndex(doc)
	ref := idx.Node(referenceID)
	if ref == nil {
		return nil, "", &mindmap.NodeNotFoundError{ID: referenceID}
	}
	parent := idx.Parent(referenceID)
	if parent == nil {
		return nil, "", &mindmap.RootNodeError{Op: "add a sibling to"}
	}
	pos := idx.ChildIndex(referenceID)
	sibling := &mindmap.Node{
		ID:          newID(),
		Topic:       topic,
		Expanded:    true,
		BranchColor: childColor(idx, parent),
	}
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[pos+2:], parent.Children[pos+1:])
	parent.Children[pos+1] = sibling
	shiftSummariesOnInsert(next, parent.ID, pos+1)
	return next, sibling.ID, nil
}

// RemoveNode removes the node and its entire subtree. Arrows with a
// removed endpoint are dropped; summaries on the removed subtree are
// dropped, and summaries on the surviving parent are repaired.
func RemoveNode(doc *mindmap.Document, nodeID string) (*mindmap.Document, error) {
	next, idx := cloneAndIndex(doc)
	if nodeID == idx.RootID() {
		return nil, &mindmap.RootNodeError{Op: "remove"}
	}
	node := idx.Node(nodeID)
	if node == nil {
		return nil, &mindmap.NodeNotFoundError{ID: nodeID}
	}

	removed := map[string]bool{nodeID: true}
	for _, id := range idx.Descendants(nodeID) {
		removed[id] = true
	}

	parent := idx.Parent(nodeID)
	pos := idx.ChildIndex(nodeID)
	parent.Children = append(parent.Children[:pos], parent.Children[pos+1:]...)

	dropArrows(next, removed)
	dropSummaries(next, removed)
	shiftSummariesOnRemove(next, parent.ID, pos)
	return next, nil
}

// MoveResult describes a completed MoveNode call. Reorder is true when
// the node stayed under the same parent, false for a true reparent.
// NoOp is true when the requested position equals the current one; the
// returned document is then the input snapshot, unchanged.
type MoveResult struct {
	Doc         *mindmap.Document
	Reorder     bool
	NoOp        bool
	OldParentID string
	NewParentID string
}

// MoveNode detaches nodeID (with its subtree, verbatim) and inserts it
// into newParentID's children at index (-1 or past-the-end appends).
// A move into the node itself or any of its descendants fails with
// CycleError; the cycle check is an ancestor walk from the proposed
// parent and is never skipped.
func MoveNode(doc *mindmap.Document, nodeID, newParentID string, index int) (MoveResult, error) {
	next, idx := cloneAndIndex(doc)
	node := idx.Node(nodeID)
	if node == nil {
		return MoveResult{}, &mindmap.NodeNotFoundError{ID: nodeID}
	}
	target := idx.Node(newParentID)
	if target == nil {
		return MoveResult{}, &mindmap.NodeNotFoundError{ID: newParentID}
	}
	if nodeID == idx.RootID() {
		return MoveResult{}, &mindmap.RootNodeError{Op: "move"}
	}
	if newParentID == nodeID || idx.IsAncestorOf(nodeID, newParentID) {
		return MoveResult{}, &mindmap.CycleError{NodeID: nodeID, TargetID: newParentID}
	}

	oldParent := idx.Parent(nodeID)
	oldPos := idx.ChildIndex(nodeID)
	reorder := oldParent.ID == newParentID

	// Detach.
	oldParent.Children = append(oldParent.Children[:oldPos], oldParent.Children[oldPos+1:]...)

	insertPos := index
	if reorder && index > oldPos {
		insertPos--
	}
	if insertPos < 0 || insertPos > len(target.Children) {
		insertPos = len(target.Children)
	}
	if reorder && insertPos == oldPos {
		return MoveResult{Doc: doc, Reorder: true, NoOp: true, OldParentID: oldParent.ID, NewParentID: newParentID}, nil
	}

	target.Children = append(target.Children, nil)
	copy(target.Children[insertPos+1:], target.Children[insertPos:])
	target.Children[insertPos] = node

	shiftSummariesOnRemove(next, oldParent.ID, oldPos)
	shiftSummariesOnInsert(next, newParentID, insertPos)
	return MoveResult{
		Doc:         next,
		Reorder:     reorder,
		OldParentID: oldParent.ID,
		NewParentID: newParentID,
	}, nil
}

// updateNode clones the document and applies fn to the addressed node.
func updateNode(doc *mindmap.Document, nodeID string, fn func(*mindmap.Node)) (*mindmap.Document, error) {
	next, idx := cloneAndIndex(doc)
	node := idx.Node(nodeID)
	if node == nil {
		return nil, &mindmap.NodeNotFoundError{ID: nodeID}
	}
	fn(node)
	return next, nil
}

// UpdateTopic replaces the node's topic text.
func UpdateTopic(doc *mindmap.Document, nodeID, topic string) (*mindmap.Document, error) {
	return updateNode(doc, nodeID, func(n *mindmap.Node) { n.Topic = topic })
}

// SetStyle replaces the node's opaque style payload.
func SetStyle(doc *mindmap.Document, nodeID, style string) (*mindmap.Document, error) {
	return updateNode(doc, nodeID, func(n *mindmap.Node) { n.Style = style })
}

// SetIcons replaces the node's icon list.
func SetIcons(doc *mindmap.Document, nodeID string, icons []string) (*mindmap.Document, error) {
	return updateNode(doc, nodeID, func(n *mindmap.Node) {
		n.Icons = append([]string(nil), icons...)
	})
}

// SetHyperLink replaces the node's hyperlink.
func SetHyperLink(doc *mindmap.Document, nodeID, url string) (*mindmap.Document, error) {
	return updateNode(doc, nodeID, func(n *mindmap.Node) { n.HyperLink = url })
}

// AddTag appends a tag if not already present.
func AddTag(doc *mindmap.Document, nodeID, tag string) (*mindmap.Document, error) {
	return updateNode(doc, nodeID, func(n *mindmap.Node) {
		for _, t := range n.Tags {
			if t == tag {
				return
			}
		}
		n.Tags = append(n.Tags, tag)
	})
}

// RemoveTag removes a tag if present.
func RemoveTag(doc *mindmap.Document, nodeID, tag string) (*mindmap.Document, error) {
	return updateNode(doc, nodeID, func(n *mindmap.Node) {
		for i, t := range n.Tags {
			if t == tag {
				n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
				return
			}
		}
	})
}

// SetExpanded sets the node's expand flag. Collapse is a visibility
// filter applied at layout time; the subtree itself is untouched.
func SetExpanded(doc *mindmap.Document, nodeID string, expanded bool) (*mindmap.Document, error) {
	return updateNode(doc, nodeID, func(n *mindmap.Node) { n.Expanded = expanded })
}
