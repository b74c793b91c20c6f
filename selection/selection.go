// Package selection tracks which nodes and arrow are selected and
// which node, if any, is the focused-subtree root. It is an explicit
// state object: the controller threads it through operations rather
// than sharing an ambient singleton.
package selection

import "mindgrid/mindmap"

// State is an immutable snapshot of the selection, checkpointed
// alongside the document in history.
type State struct {
	NodeIDs []string // insertion order is significant: last entry is "last selected"
	ArrowID string
	FocusID string
}

// clone returns a copy safe to retain.
func (s State) clone() State {
	out := State{ArrowID: s.ArrowID, FocusID: s.FocusID}
	if s.NodeIDs != nil {
		out.NodeIDs = make([]string, len(s.NodeIDs))
		copy(out.NodeIDs, s.NodeIDs)
	}
	return out
}

// Manager is the selection/focus state machine. Every state-changing
// call notifies the relevant listeners once with the resulting state;
// no-op calls notify nothing.
type Manager struct {
	nodeIDs []string
	member  map[string]bool
	arrowID string
	focusID string

	selectionListeners []func([]string)
	focusListeners     []func(string)
}

// NewManager creates an empty selection.
func NewManager() *Manager {
	return &Manager{member: make(map[string]bool)}
}

// OnSelectionChanged registers a listener for node/arrow selection
// changes. The slice passed to the listener is a copy.
func (m *Manager) OnSelectionChanged(fn func(nodeIDs []string)) {
	m.selectionListeners = append(m.selectionListeners, fn)
}

// OnFocusChanged registers a listener for focus enter/exit. The
// argument is the focused node id, or "" when focus was cleared.
func (m *Manager) OnFocusChanged(fn func(focusID string)) {
	m.focusListeners = append(m.focusListeners, fn)
}

func (m *Manager) notifySelection() {
	ids := m.SelectedNodes()
	for _, fn := range m.selectionListeners {
		fn(ids)
	}
}

func (m *Manager) notifyFocus() {
	for _, fn := range m.focusListeners {
		fn(m.focusID)
	}
}

// SelectedNodes returns the selected node ids in insertion order.
func (m *Manager) SelectedNodes() []string {
	out := make([]string, len(m.nodeIDs))
	copy(out, m.nodeIDs)
	return out
}

// LastSelected returns the most recently selected node id, or "".
func (m *Manager) LastSelected() string {
	if len(m.nodeIDs) == 0 {
		return ""
	}
	return m.nodeIDs[len(m.nodeIDs)-1]
}

// IsSelected reports membership.
func (m *Manager) IsSelected(id string) bool {
	return m.member[id]
}

// SelectedArrow returns the selected arrow id, or "".
func (m *Manager) SelectedArrow() string {
	return m.arrowID
}

// Focused returns the focused node id, or "".
func (m *Manager) Focused() string {
	return m.focusID
}

// Select replaces the selection with a single node. Selecting the node
// that is already the sole selection is a no-op and emits nothing.
func (m *Manager) Select(id string) {
	if len(m.nodeIDs) == 1 && m.nodeIDs[0] == id && m.arrowID == "" {
		return
	}
	m.nodeIDs = []string{id}
	m.member = map[string]bool{id: true}
	m.arrowID = ""
	m.notifySelection()
}

// Add appends a node to the selection; a no-op if already present.
func (m *Manager) Add(id string) {
	if m.member[id] {
		return
	}
	m.nodeIDs = append(m.nodeIDs, id)
	m.member[id] = true
	m.notifySelection()
}

// Toggle flips a node's membership.
func (m *Manager) Toggle(id string) {
	if m.member[id] {
		m.Remove(id)
		return
	}
	m.Add(id)
}

// Remove deletes a node from the selection; a no-op if absent.
func (m *Manager) Remove(id string) {
	if !m.member[id] {
		return
	}
	for i, cur := range m.nodeIDs {
		if cur == id {
			m.nodeIDs = append(m.nodeIDs[:i], m.nodeIDs[i+1:]...)
			break
		}
	}
	delete(m.member, id)
	m.notifySelection()
}

// SetSelection replaces the selection wholesale, deduplicating while
// preserving first-seen order.
func (m *Manager) SetSelection(ids []string) {
	next := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		next = append(next, id)
	}
	if equalIDs(next, m.nodeIDs) && m.arrowID == "" {
		return
	}
	m.nodeIDs = next
	m.member = seen
	m.arrowID = ""
	m.notifySelection()
}

// SelectArrow selects a single arrow, clearing node selection.
func (m *Manager) SelectArrow(id string) {
	if m.arrowID == id && len(m.nodeIDs) == 0 {
		return
	}
	m.nodeIDs = nil
	m.member = make(map[string]bool)
	m.arrowID = id
	m.notifySelection()
}

// Clear empties the selection; a no-op when already empty.
func (m *Manager) Clear() {
	if len(m.nodeIDs) == 0 && m.arrowID == "" {
		return
	}
	m.nodeIDs = nil
	m.member = make(map[string]bool)
	m.arrowID = ""
	m.notifySelection()
}

// Focus sets the focused-subtree root and clears the selection.
// Focusing the root node is allowed. Unknown ids fail with
// NodeNotFoundError and change nothing.
func (m *Manager) Focus(idx *mindmap.Index, id string) error {
	if !idx.Contains(id) {
		return &mindmap.NodeNotFoundError{ID: id}
	}
	m.Clear()
	if m.focusID == id {
		return nil
	}
	m.focusID = id
	m.notifyFocus()
	return nil
}

// ExitFocus clears focus unconditionally; a no-op when not focused.
func (m *Manager) ExitFocus() {
	if m.focusID == "" {
		return
	}
	m.focusID = ""
	m.notifyFocus()
}

// Prune drops selected and focused ids that are absent from the given
// snapshot, notifying only if something actually changed.
func (m *Manager) Prune(idx *mindmap.Index) {
	kept := m.nodeIDs[:0]
	changed := false
	for _, id := range m.nodeIDs {
		if idx.Contains(id) {
			kept = append(kept, id)
			continue
		}
		delete(m.member, id)
		changed = true
	}
	m.nodeIDs = kept
	if changed {
		m.notifySelection()
	}
	if m.focusID != "" && !idx.Contains(m.focusID) {
		m.focusID = ""
		m.notifyFocus()
	}
}

// PruneArrow clears the arrow selection if the arrow no longer exists.
func (m *Manager) PruneArrow(doc *mindmap.Document) {
	if m.arrowID == "" || doc.Arrow(m.arrowID) != nil {
		return
	}
	m.arrowID = ""
	m.notifySelection()
}

// Snapshot captures the current state for a history checkpoint.
func (m *Manager) Snapshot() State {
	return State{
		NodeIDs: m.SelectedNodes(),
		ArrowID: m.arrowID,
		FocusID: m.focusID,
	}.clone()
}

// Restore installs a checkpointed state, notifying listeners of
// whatever actually changed.
func (m *Manager) Restore(s State) {
	s = s.clone()
	selChanged := !equalIDs(s.NodeIDs, m.nodeIDs) || s.ArrowID != m.arrowID
	focusChanged := s.FocusID != m.focusID
	m.nodeIDs = s.NodeIDs
	m.member = make(map[string]bool, len(s.NodeIDs))
	for _, id := range s.NodeIDs {
		m.member[id] = true
	}
	m.arrowID = s.ArrowID
	m.focusID = s.FocusID
	if selChanged {
		m.notifySelection()
	}
	if focusChanged {
		m.notifyFocus()
	}
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
