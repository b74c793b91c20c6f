package controller

// EventKind identifies a completed user-visible operation. The event
// stream is the contract outer layers (undo UI, analytics, sync) build
// on: exactly one event per completed operation.
type EventKind int

const (
	EventNodeAdded EventKind = iota
	EventNodeRemoved
	EventNodeMoved
	EventEditStarted
	EventEditFinished
	EventExpandChanged
	EventSelectionChanged
	EventFocusChanged
	EventArrowAdded
	EventArrowRemoved
	EventSummaryAdded
	EventSummaryRemoved
	EventHyperlinkActivated
	EventZoomChanged
	EventDocumentReplaced
)

// String returns the event kind name for display.
func (k EventKind) String() string {
	switch k {
	case EventNodeAdded:
		return "node-added"
	case EventNodeRemoved:
		return "node-removed"
	case EventNodeMoved:
		return "node-moved"
	case EventEditStarted:
		return "edit-started"
	case EventEditFinished:
		return "edit-finished"
	case EventExpandChanged:
		return "expand-changed"
	case EventSelectionChanged:
		return "selection-changed"
	case EventFocusChanged:
		return "focus-changed"
	case EventArrowAdded:
		return "arrow-added"
	case EventArrowRemoved:
		return "arrow-removed"
	case EventSummaryAdded:
		return "summary-added"
	case EventSummaryRemoved:
		return "summary-removed"
	case EventHyperlinkActivated:
		return "hyperlink-activated"
	case EventZoomChanged:
		return "zoom-changed"
	case EventDocumentReplaced:
		return "document-replaced"
	default:
		return "unknown"
	}
}

// Event carries the details of one completed operation. Only the
// fields relevant to the kind are set.
type Event struct {
	Kind EventKind

	NodeID      string
	ParentID    string // node-added, node-moved: the (new) parent
	OldParentID string // node-moved
	Reorder     bool   // node-moved: same parent, different index
	Sibling     bool   // node-added: created via add-sibling

	Topic    string // edit-finished: the new text
	Expanded bool   // expand-changed: resulting state

	NodeIDs []string // selection-changed: resulting ordered id list
	FocusID string   // focus-changed: "" on exit

	ArrowID   string
	SummaryID string
	URL       string  // hyperlink-activated
	Zoom      float64 // zoom-changed
}
