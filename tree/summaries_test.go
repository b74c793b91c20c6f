package tree

import (
	"errors"
	"testing"

	"mindgrid/mindmap"
)

// summaryDoc builds root with four leaf children c0..c3.
func summaryDoc() *mindmap.Document {
	return &mindmap.Document{
		Root: &mindmap.Node{ID: "p", Topic: "P", Expanded: true, Children: []*mindmap.Node{
			{ID: "c0", Topic: "C0", Expanded: true},
			{ID: "c1", Topic: "C1", Expanded: true},
			{ID: "c2", Topic: "C2", Expanded: true},
			{ID: "c3", Topic: "C3", Expanded: true},
		}},
	}
}

func TestAddSummary(t *testing.T) {
	next, id, err := AddSummary(summaryDoc(), "p", 1, 2, "pair")
	if err != nil {
		t.Fatalf("AddSummary failed: %v", err)
	}
	sum := next.Summary(id)
	if sum == nil || sum.Start != 1 || sum.End != 2 || sum.Label != "pair" {
		t.Errorf("summary = %v", sum)
	}
}

func TestAddSummaryInvalidRange(t *testing.T) {
	var ir *mindmap.InvalidRangeError
	// 4 children, endIndex 5 is out of bounds.
	if _, _, err := AddSummary(summaryDoc(), "p", 0, 5, "x"); !errors.As(err, &ir) {
		t.Fatalf("err = %v, want InvalidRangeError", err)
	}
	if _, _, err := AddSummary(summaryDoc(), "p", 2, 1, "x"); !errors.As(err, &ir) {
		t.Fatalf("inverted range err = %v, want InvalidRangeError", err)
	}
	if _, _, err := AddSummary(summaryDoc(), "p", -1, 1, "x"); !errors.As(err, &ir) {
		t.Fatalf("negative start err = %v, want InvalidRangeError", err)
	}

	var nf *mindmap.NodeNotFoundError
	if _, _, err := AddSummary(summaryDoc(), "missing", 0, 1, "x"); !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NodeNotFoundError", err)
	}
}

func TestSummaryShiftsOnSiblingInsert(t *testing.T) {
	doc, id, err := AddSummary(summaryDoc(), "p", 1, 2, "pair")
	if err != nil {
		t.Fatalf("AddSummary failed: %v", err)
	}

	// Insert before the bracket: both indices slide right.
	next, _, err := AddSibling(doc, "c0", "x")
	if err != nil {
		t.Fatalf("AddSibling failed: %v", err)
	}
	sum := next.Summary(id)
	if sum.Start != 2 || sum.End != 3 {
		t.Errorf("range after insert-before = [%d, %d], want [2, 3]", sum.Start, sum.End)
	}

	// Insert inside the bracket: it widens.
	next2, _, err := AddSibling(doc, "c1", "y")
	if err != nil {
		t.Fatalf("AddSibling failed: %v", err)
	}
	sum2 := next2.Summary(id)
	if sum2.Start != 1 || sum2.End != 3 {
		t.Errorf("range after insert-inside = [%d, %d], want [1, 3]", sum2.Start, sum2.End)
	}

	// Insert after the bracket: untouched.
	next3, _, err := AddSibling(doc, "c3", "z")
	if err != nil {
		t.Fatalf("AddSibling failed: %v", err)
	}
	sum3 := next3.Summary(id)
	if sum3.Start != 1 || sum3.End != 2 {
		t.Errorf("range after insert-after = [%d, %d], want [1, 2]", sum3.Start, sum3.End)
	}
}

func TestSummaryShiftsOnRemove(t *testing.T) {
	doc, id, err := AddSummary(summaryDoc(), "p", 1, 2, "pair")
	if err != nil {
		t.Fatalf("AddSummary failed: %v", err)
	}

	// Remove before the bracket.
	next, err := RemoveNode(doc, "c0")
	if err != nil {
		t.Fatalf("RemoveNode failed: %v", err)
	}
	sum := next.Summary(id)
	if sum.Start != 0 || sum.End != 1 {
		t.Errorf("range after remove-before = [%d, %d], want [0, 1]", sum.Start, sum.End)
	}

	// Remove inside the bracket.
	next2, err := RemoveNode(doc, "c1")
	if err != nil {
		t.Fatalf("RemoveNode failed: %v", err)
	}
	sum2 := next2.Summary(id)
	if sum2.Start != 1 || sum2.End != 1 {
		t.Errorf("range after remove-inside = [%d, %d], want [1, 1]", sum2.Start, sum2.End)
	}
}

func TestSummaryDroppedWhenEmptied(t *testing.T) {
	doc, id, err := AddSummary(summaryDoc(), "p", 2, 2, "solo")
	if err != nil {
		t.Fatalf("AddSummary failed: %v", err)
	}
	next, err := RemoveNode(doc, "c2")
	if err != nil {
		t.Fatalf("RemoveNode failed: %v", err)
	}
	if next.Summary(id) != nil {
		t.Error("summary over a removed-only range should be dropped")
	}
}

func TestSummaryDroppedWithParent(t *testing.T) {
	doc := summaryDoc()
	sub, _, err := AddChild(doc, "c0", "leaf")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	sub, id, err := AddSummary(sub, "c0", 0, 0, "inner")
	if err != nil {
		t.Fatalf("AddSummary failed: %v", err)
	}
	next, err := RemoveNode(sub, "c0")
	if err != nil {
		t.Fatalf("RemoveNode failed: %v", err)
	}
	if next.Summary(id) != nil {
		t.Error("summary should die with its parent")
	}
}

func TestRemoveSummary(t *testing.T) {
	doc, id, err := AddSummary(summaryDoc(), "p", 0, 1, "x")
	if err != nil {
		t.Fatalf("AddSummary failed: %v", err)
	}
	next, err := RemoveSummary(doc, id)
	if err != nil {
		t.Fatalf("RemoveSummary failed: %v", err)
	}
	if len(next.Summaries) != 0 {
		t.Errorf("summaries = %v, want empty", next.Summaries)
	}

	var nf *mindmap.NodeNotFoundError
	if _, err := RemoveSummary(doc, "missing"); !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NodeNotFoundError", err)
	}
}
