// Package history records undo/redo checkpoints around mutations.
// Each checkpoint pairs the document snapshot with the selection/focus
// state, captured immediately before and immediately after the
// mutation, so undo restores what the user was looking at and not just
// tree shape.
package history

import (
	"mindgrid/mindmap"
	"mindgrid/selection"
)

// State is one side of a checkpoint: a document snapshot plus the
// selection at that instant.
type State struct {
	Doc *mindmap.Document
	Sel selection.State
}

// Checkpoint is one recorded mutation.
type Checkpoint struct {
	Before State
	After  State
}

// History holds a bounded past stack and an unbounded future stack.
// Recording a new checkpoint clears the future, and the oldest past
// entry is evicted once the configured depth is reached.
type History struct {
	past      []Checkpoint
	future    []Checkpoint
	max       int
	recording bool
}

// New creates a history with the given depth. Depth values below one
// fall back to 50, matching the default editing session size.
func New(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		past:      make([]Checkpoint, 0, max),
		max:       max,
		recording: true,
	}
}

// SetRecording enables or disables checkpointing. While disabled,
// mutations still apply but nothing is recorded and CanUndo/CanRedo
// stay false.
func (h *History) SetRecording(on bool) {
	h.recording = on
}

// Record pushes a checkpoint and clears the redo stack.
func (h *History) Record(before, after State) {
	if !h.recording {
		return
	}
	if len(h.past) >= h.max {
		h.past = h.past[1:]
	}
	h.past = append(h.past, Checkpoint{Before: before, After: after})
	h.future = h.future[:0]
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool {
	return h.recording && len(h.past) > 0
}

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool {
	return h.recording && len(h.future) > 0
}

// Undo pops the most recent checkpoint and returns its before state.
// Returns false, with no state change, when there is nothing to undo.
func (h *History) Undo() (State, bool) {
	if !h.CanUndo() {
		return State{}, false
	}
	cp := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, cp)
	return cp.Before, true
}

// Redo pops the most recently undone checkpoint and returns its after
// state. Returns false, with no state change, when there is nothing to
// redo.
func (h *History) Redo() (State, bool) {
	if !h.CanRedo() {
		return State{}, false
	}
	cp := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, cp)
	return cp.After, true
}

// Clear drops both stacks. Called on wholesale document replacement.
func (h *History) Clear() {
	h.past = h.past[:0]
	h.future = h.future[:0]
}

// Stats returns the number of undoable and redoable checkpoints.
func (h *History) Stats() (undo, redo int) {
	return len(h.past), len(h.future)
}
