package tree

import (
	"errors"
	"testing"

	"mindgrid/mindmap"
)

func TestAddArrow(t *testing.T) {
	doc := wideDoc()
	next, id, err := AddArrow(doc, "a", "c", "relates")
	if err != nil {
		t.Fatalf("AddArrow failed: %v", err)
	}
	arrow := next.Arrow(id)
	if arrow == nil {
		t.Fatal("arrow missing from snapshot")
	}
	if arrow.From != "a" || arrow.To != "c" || arrow.Label != "relates" {
		t.Errorf("arrow = %+v", arrow)
	}
	if arrow.Delta1 == (mindmap.Point{}) || arrow.Delta2 == (mindmap.Point{}) {
		t.Error("default control-point offsets should be non-zero")
	}
	if len(doc.Arrows) != 0 {
		t.Error("input snapshot modified")
	}

	var nf *mindmap.NodeNotFoundError
	if _, _, err := AddArrow(doc, "a", "missing", ""); !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NodeNotFoundError", err)
	}
}

func TestRemoveArrow(t *testing.T) {
	doc, id, err := AddArrow(wideDoc(), "a", "b", "")
	if err != nil {
		t.Fatalf("AddArrow failed: %v", err)
	}
	next, err := RemoveArrow(doc, id)
	if err != nil {
		t.Fatalf("RemoveArrow failed: %v", err)
	}
	if len(next.Arrows) != 0 {
		t.Errorf("arrows = %v, want empty", next.Arrows)
	}

	var nf *mindmap.NodeNotFoundError
	if _, err := RemoveArrow(doc, "missing"); !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NodeNotFoundError", err)
	}
}

func TestArrowUpdates(t *testing.T) {
	doc, id, err := AddArrow(wideDoc(), "a", "b", "old")
	if err != nil {
		t.Fatalf("AddArrow failed: %v", err)
	}

	next, err := UpdateArrowLabel(doc, id, "new")
	if err != nil {
		t.Fatalf("UpdateArrowLabel failed: %v", err)
	}
	if next.Arrow(id).Label != "new" {
		t.Error("label not updated")
	}
	if doc.Arrow(id).Label != "old" {
		t.Error("input snapshot modified")
	}

	next, err = SetArrowDelta(next, id, 1, mindmap.Point{X: 10, Y: 20})
	if err != nil {
		t.Fatalf("SetArrowDelta failed: %v", err)
	}
	if got := next.Arrow(id).Delta1; got != (mindmap.Point{X: 10, Y: 20}) {
		t.Errorf("Delta1 = %v", got)
	}

	next, err = SetArrowBidirectional(next, id, true)
	if err != nil {
		t.Fatalf("SetArrowBidirectional failed: %v", err)
	}
	if !next.Arrow(id).Bidirectional {
		t.Error("bidirectional not set")
	}
}
