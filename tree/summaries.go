package tree

import "mindgrid/mindmap"

// AddSummary creates a labeled bracket over parentID's children from
// start to end inclusive. The range is validated against the parent's
// children at creation time; later mutations repair affected ranges
// (see shiftSummariesOnInsert / shiftSummariesOnRemove).
func AddSummary(doc *mindmap.Document, parentID string, start, end int, label string) (*mindmap.Document, string, error) {
	next, idx := cloneAndIndex(doc)
	parent := idx.Node(parentID)
	if parent == nil {
		return nil, "", &mindmap.NodeNotFoundError{ID: parentID}
	}
	if start < 0 || end >= len(parent.Children) || start > end {
		return nil, "", &mindmap.InvalidRangeError{Start: start, End: end, Len: len(parent.Children)}
	}
	sum := mindmap.Summary{
		ID:       newID(),
		ParentID: parentID,
		Start:    start,
		End:      end,
		Label:    label,
	}
	next.Summaries = append(next.Summaries, sum)
	return next, sum.ID, nil
}

// RemoveSummary deletes the summary with the given id.
func RemoveSummary(doc *mindmap.Document, summaryID string) (*mindmap.Document, error) {
	next := doc.Clone()
	for i := range next.Summaries {
		if next.Summaries[i].ID == summaryID {
			next.Summaries = append(next.Summaries[:i], next.Summaries[i+1:]...)
			return next, nil
		}
	}
	return nil, &mindmap.NodeNotFoundError{ID: summaryID}
}

// UpdateSummaryLabel replaces a summary's label.
func UpdateSummaryLabel(doc *mindmap.Document, summaryID, label string) (*mindmap.Document, error) {
	next := doc.Clone()
	sum := next.Summary(summaryID)
	if sum == nil {
		return nil, &mindmap.NodeNotFoundError{ID: summaryID}
	}
	sum.Label = label
	return next, nil
}

// dropSummaries removes every summary whose parent is in the removed
// set.
func dropSummaries(doc *mindmap.Document, removed map[string]bool) {
	kept := doc.Summaries[:0]
	for _, s := range doc.Summaries {
		if removed[s.ParentID] {
			continue
		}
		kept = append(kept, s)
	}
	doc.Summaries = kept
}

// shiftSummariesOnRemove repairs ranges on parentID after the child at
// pos was detached. A bracket emptied by the removal is dropped.
func shiftSummariesOnRemove(doc *mindmap.Document, parentID string, pos int) {
	kept := doc.Summaries[:0]
	for _, s := range doc.Summaries {
		if s.ParentID == parentID {
			switch {
			case pos < s.Start:
				s.Start--
				s.End--
			case pos <= s.End:
				s.End--
			}
			if s.End < s.Start {
				continue
			}
		}
		kept = append(kept, s)
	}
	doc.Summaries = kept
}

// shiftSummariesOnInsert repairs ranges on parentID after a child was
// inserted at pos. Insertion strictly inside a bracket widens it;
// insertion before it slides it right.
func shiftSummariesOnInsert(doc *mindmap.Document, parentID string, pos int) {
	for i := range doc.Summaries {
		s := &doc.Summaries[i]
		if s.ParentID != parentID {
			continue
		}
		switch {
		case pos <= s.Start:
			s.Start++
			s.End++
		case pos <= s.End:
			s.End++
		}
	}
}
