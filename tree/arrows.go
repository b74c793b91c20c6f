package tree

import "mindgrid/mindmap"

// AddArrow creates a cross-tree arrow between two existing nodes with
// default control-point offsets pointing away from each endpoint.
func AddArrow(doc *mindmap.Document, fromID, toID, label string) (*mindmap.Document, string, error) {
	next, idx := cloneAndIndex(doc)
	if !idx.Contains(fromID) {
		return nil, "", &mindmap.NodeNotFoundError{ID: fromID}
	}
	if !idx.Contains(toID) {
		return nil, "", &mindmap.NodeNotFoundError{ID: toID}
	}
	arrow := mindmap.Arrow{
		ID:     newID(),
		From:   fromID,
		To:     toID,
		Label:  label,
		Delta1: mindmap.Point{X: 40, Y: -40},
		Delta2: mindmap.Point{X: -40, Y: -40},
	}
	next.Arrows = append(next.Arrows, arrow)
	return next, arrow.ID, nil
}

// RemoveArrow deletes the arrow with the given id. Unknown ids are
// reported as NodeNotFoundError since an arrow id is addressed the same
// way a node id is.
func RemoveArrow(doc *mindmap.Document, arrowID string) (*mindmap.Document, error) {
	next := doc.Clone()
	for i := range next.Arrows {
		if next.Arrows[i].ID == arrowID {
			next.Arrows = append(next.Arrows[:i], next.Arrows[i+1:]...)
			return next, nil
		}
	}
	return nil, &mindmap.NodeNotFoundError{ID: arrowID}
}

// UpdateArrowLabel replaces an arrow's label.
func UpdateArrowLabel(doc *mindmap.Document, arrowID, label string) (*mindmap.Document, error) {
	next := doc.Clone()
	arrow := next.Arrow(arrowID)
	if arrow == nil {
		return nil, &mindmap.NodeNotFoundError{ID: arrowID}
	}
	arrow.Label = label
	return next, nil
}

// SetArrowDelta replaces one of the arrow's control-point offsets.
// which selects the endpoint: 1 for the from side, 2 for the to side.
func SetArrowDelta(doc *mindmap.Document, arrowID string, which int, delta mindmap.Point) (*mindmap.Document, error) {
	next := doc.Clone()
	arrow := next.Arrow(arrowID)
	if arrow == nil {
		return nil, &mindmap.NodeNotFoundError{ID: arrowID}
	}
	if which == 1 {
		arrow.Delta1 = delta
	} else {
		arrow.Delta2 = delta
	}
	return next, nil
}

// SetArrowBidirectional sets whether the arrow points both ways.
func SetArrowBidirectional(doc *mindmap.Document, arrowID string, bidirectional bool) (*mindmap.Document, error) {
	next := doc.Clone()
	arrow := next.Arrow(arrowID)
	if arrow == nil {
		return nil, &mindmap.NodeNotFoundError{ID: arrowID}
	}
	arrow.Bidirectional = bidirectional
	return next, nil
}

// dropArrows removes every arrow with an endpoint in the removed set.
func dropArrows(doc *mindmap.Document, removed map[string]bool) {
	kept := doc.Arrows[:0]
	for _, a := range doc.Arrows {
		if removed[a.From] || removed[a.To] {
			continue
		}
		kept = append(kept, a)
	}
	doc.Arrows = kept
}
