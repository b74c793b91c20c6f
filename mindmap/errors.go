package mindmap

import "fmt"

// NodeNotFoundError reports an operation that referenced an id absent
// from the current snapshot.
type NodeNotFoundError struct {
	ID string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %q not found", e.ID)
}

// RootNodeError reports an operation that is structurally forbidden on
// the root node (remove, add-sibling).
type RootNodeError struct {
	Op string
}

func (e *RootNodeError) Error() string {
	return fmt.Sprintf("cannot %s the root node", e.Op)
}

// CycleError reports a move that would make a node its own ancestor,
// including the self-move case.
type CycleError struct {
	NodeID   string
	TargetID string
}

func (e *CycleError) Error() string {
	if e.NodeID == e.TargetID {
		return fmt.Sprintf("cannot move node %q into itself", e.NodeID)
	}
	return fmt.Sprintf("cannot move node %q under its own descendant %q", e.NodeID, e.TargetID)
}

// InvalidRangeError reports summary indices that are out of bounds or
// inverted for the parent's current children.
type InvalidRangeError struct {
	Start, End int
	Len        int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("summary range [%d, %d] invalid for %d children", e.Start, e.End, e.Len)
}

// InvalidParentError reports a summary whose nodes do not share the
// declared parent at one tree level.
type InvalidParentError struct {
	Reason string
}

func (e *InvalidParentError) Error() string {
	return fmt.Sprintf("invalid summary parent: %s", e.Reason)
}
