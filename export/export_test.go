package export

import (
	"reflect"
	"strings"
	"testing"

	"mindgrid/mindmap"
)

func exportDoc() *mindmap.Document {
	return &mindmap.Document{
		Direction: mindmap.DirectionRight,
		Root: &mindmap.Node{
			ID: "root", Topic: "Plan", Expanded: true,
			Children: []*mindmap.Node{
				{
					ID: "a", Topic: "Research", Expanded: true,
					Style: "bold", Tags: []string{"urgent"}, Icons: []string{"star"},
					HyperLink: "https://example.com", BranchColor: "#e63946",
					Children: []*mindmap.Node{
						{ID: "c", Topic: "Sources", Expanded: true},
					},
				},
				{ID: "b", Topic: "Write", Expanded: false,
					Children: []*mindmap.Node{{ID: "d", Topic: "Draft", Expanded: true}}},
			},
		},
		Arrows: []mindmap.Arrow{{
			ID: "ar1", From: "a", To: "b", Label: "feeds",
			Bidirectional: true,
			Delta1:        mindmap.Point{X: 40, Y: -40},
			Delta2:        mindmap.Point{X: -40, Y: -40},
			Style:         "dashed",
		}},
		Summaries: []mindmap.Summary{{
			ID: "s1", ParentID: "root", Start: 0, End: 1, Label: "phases",
		}},
	}
}

func TestJSONRoundTripIsLossless(t *testing.T) {
	doc := exportDoc()
	data, err := MarshalDocument(doc)
	if err != nil {
		t.Fatalf("MarshalDocument failed: %v", err)
	}
	back, err := UnmarshalDocument(data)
	if err != nil {
		t.Fatalf("UnmarshalDocument failed: %v", err)
	}
	if !reflect.DeepEqual(doc, back) {
		t.Errorf("round trip changed the document:\nin:  %+v\nout: %+v", doc, back)
	}
}

func TestUnmarshalRejectsRootlessDocument(t *testing.T) {
	if _, err := UnmarshalDocument([]byte(`{"arrows": []}`)); err == nil {
		t.Error("document without a root should be rejected")
	}
	if _, err := UnmarshalDocument([]byte(`not json`)); err == nil {
		t.Error("malformed input should be rejected")
	}
}

func TestRepairIDsFillsBlanksAndDuplicates(t *testing.T) {
	doc := &mindmap.Document{
		Root: &mindmap.Node{ID: "", Topic: "R", Expanded: true, Children: []*mindmap.Node{
			{ID: "dup", Topic: "X", Expanded: true},
			{ID: "dup", Topic: "Y", Expanded: true},
			{ID: "keep", Topic: "Z", Expanded: true},
		}},
		Arrows:    []mindmap.Arrow{{ID: ""}},
		Summaries: []mindmap.Summary{{ID: "dup"}},
	}
	RepairIDs(doc)

	seen := make(map[string]bool)
	check := func(id, what string) {
		if id == "" {
			t.Errorf("%s still has a blank id", what)
		}
		if seen[id] {
			t.Errorf("%s id %q still duplicated", what, id)
		}
		seen[id] = true
	}
	check(doc.Root.ID, "root")
	for _, child := range doc.Root.Children {
		check(child.ID, "node "+child.Topic)
	}
	check(doc.Arrows[0].ID, "arrow")
	check(doc.Summaries[0].ID, "summary")

	if !seen["keep"] || !seen["dup"] {
		t.Error("repair must keep the first occurrence of a usable id")
	}
}

func TestOutline(t *testing.T) {
	out := Outline(exportDoc())

	for _, want := range []string{
		"- Plan\n",
		"  - Research <https://example.com>\n",
		"    - Sources\n",
		"  - Write [...]\n",
		"arrows:\n",
		"  Research <-> Write (feeds)\n",
		"summaries:\n",
		"  Plan [0..1] phases\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("outline missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Draft") {
		t.Error("collapsed subtree content should not appear in the outline")
	}
}
