package tree

import (
	"errors"
	"reflect"
	"testing"

	"mindgrid/mindmap"
)

// fixedDoc builds:
//
//	root
//	├── a
//	│   └── c
//	│       └── d
//	└── b
func fixedDoc() *mindmap.Document {
	return &mindmap.Document{
		Root: &mindmap.Node{ID: "root", Topic: "Root", Expanded: true, Children: []*mindmap.Node{
			{ID: "a", Topic: "A", Expanded: true, Children: []*mindmap.Node{
				{ID: "c", Topic: "C", Expanded: true, Children: []*mindmap.Node{
					{ID: "d", Topic: "D", Expanded: true},
				}},
			}},
			{ID: "b", Topic: "B", Expanded: true},
		}},
	}
}

// wideDoc builds root with children a, b, c (all leaves).
func wideDoc() *mindmap.Document {
	return &mindmap.Document{
		Root: &mindmap.Node{ID: "root", Topic: "Root", Expanded: true, Children: []*mindmap.Node{
			{ID: "a", Topic: "A", Expanded: true},
			{ID: "b", Topic: "B", Expanded: true},
			{ID: "c", Topic: "C", Expanded: true},
		}},
	}
}

func TestAddChildAppends(t *testing.T) {
	doc := fixedDoc()
	next, id, err := AddChild(doc, "a", "new")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if id == "" {
		t.Fatal("AddChild returned empty id")
	}
	idx := mindmap.NewIndex(next)
	a := idx.Node("a")
	if len(a.Children) != 2 {
		t.Fatalf("a has %d children, want 2", len(a.Children))
	}
	if a.Children[1].ID != id || a.Children[1].Topic != "new" {
		t.Errorf("new child not appended at end: %v", a.Children[1])
	}
	// Purity: the input snapshot is untouched.
	if len(fixedDoc().Root.Children[0].Children) != len(doc.Root.Children[0].Children) {
		t.Error("input document was modified")
	}
}

func TestAddChildUnknownParent(t *testing.T) {
	var nf *mindmap.NodeNotFoundError
	_, _, err := AddChild(fixedDoc(), "missing", "x")
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NodeNotFoundError", err)
	}
}

func TestAddChildIDsUnique(t *testing.T) {
	doc := fixedDoc()
	seen := map[string]bool{"root": true, "a": true, "b": true, "c": true, "d": true}
	for i := 0; i < 50; i++ {
		next, id, err := AddChild(doc, "root", "n")
		if err != nil {
			t.Fatalf("AddChild failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		doc = next
	}
	idx := mindmap.NewIndex(doc)
	if idx.NodeCount() != 55 {
		t.Errorf("NodeCount = %d, want 55", idx.NodeCount())
	}
}

func TestBranchColors(t *testing.T) {
	doc := fixedDoc()
	next, topID, err := AddChild(doc, "root", "top")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	idx := mindmap.NewIndex(next)
	top := idx.Node(topID)
	if top.BranchColor != branchPalette[2] {
		t.Errorf("third root child color = %q, want %q", top.BranchColor, branchPalette[2])
	}

	// A deep child inherits its parent's color, not a fresh one.
	colored := fixedDoc()
	colored.Root.Children[0].BranchColor = "#123456"
	next2, deepID, err := AddChild(colored, "a", "deep")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	idx2 := mindmap.NewIndex(next2)
	if got := idx2.Node(deepID).BranchColor; got != "#123456" {
		t.Errorf("deep child color = %q, want inherited #123456", got)
	}
}

func TestAddSibling(t *testing.T) {
	doc := wideDoc()
	next, id, err := AddSibling(doc, "a", "after-a")
	if err != nil {
		t.Fatalf("AddSibling failed: %v", err)
	}
	idx := mindmap.NewIndex(next)
	kids := idx.Node("root").Children
	if len(kids) != 4 {
		t.Fatalf("root has %d children, want 4", len(kids))
	}
	if kids[1].ID != id {
		t.Errorf("sibling inserted at index %d, want 1", indexOf(kids, id))
	}
	if kids[0].ID != "a" || kids[2].ID != "b" || kids[3].ID != "c" {
		t.Errorf("sibling order wrong: %v", idsOf(kids))
	}
}

func TestAddSiblingToRoot(t *testing.T) {
	var re *mindmap.RootNodeError
	_, _, err := AddSibling(fixedDoc(), "root", "x")
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RootNodeError", err)
	}
}

func TestRemoveNodeCascades(t *testing.T) {
	// 5 nodes; removing a (which has 2 descendants) leaves 2.
	doc := fixedDoc()
	next, err := RemoveNode(doc, "a")
	if err != nil {
		t.Fatalf("RemoveNode failed: %v", err)
	}
	idx := mindmap.NewIndex(next)
	if idx.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", idx.NodeCount())
	}
	for _, id := range []string{"a", "c", "d"} {
		if idx.Contains(id) {
			t.Errorf("id %q should be gone", id)
		}
	}
	for _, id := range []string{"root", "b"} {
		if !idx.Contains(id) {
			t.Errorf("id %q should survive", id)
		}
	}
}

func TestRemoveRoot(t *testing.T) {
	var re *mindmap.RootNodeError
	_, err := RemoveNode(fixedDoc(), "root")
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RootNodeError", err)
	}
}

func TestRemoveNodeDropsDanglingArrows(t *testing.T) {
	doc := fixedDoc()
	doc.Arrows = []mindmap.Arrow{
		{ID: "ar1", From: "d", To: "b"},
		{ID: "ar2", From: "b", To: "root"},
	}
	next, err := RemoveNode(doc, "c")
	if err != nil {
		t.Fatalf("RemoveNode failed: %v", err)
	}
	if len(next.Arrows) != 1 || next.Arrows[0].ID != "ar2" {
		t.Errorf("arrows after removal = %v, want only ar2", next.Arrows)
	}
}

func TestMoveNodeCycle(t *testing.T) {
	// Root with children A, B where A has child C: moving A under C
	// must fail and leave the tree byte-for-byte unchanged.
	doc := fixedDoc()
	before := doc.Clone()

	var ce *mindmap.CycleError
	_, err := MoveNode(doc, "a", "c", -1)
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want CycleError", err)
	}
	if !reflect.DeepEqual(doc, before) {
		t.Error("failed move modified the tree")
	}

	// Self-move is rejected explicitly.
	_, err = MoveNode(doc, "a", "a", -1)
	if !errors.As(err, &ce) {
		t.Fatalf("self-move err = %v, want CycleError", err)
	}
}

func TestMoveNodeReparent(t *testing.T) {
	// Root with children a, b, c: move c under a at index 0.
	doc := wideDoc()
	res, err := MoveNode(doc, "c", "a", 0)
	if err != nil {
		t.Fatalf("MoveNode failed: %v", err)
	}
	if res.Reorder {
		t.Error("reparent flagged as reorder")
	}
	if res.OldParentID != "root" || res.NewParentID != "a" {
		t.Errorf("parents = %q -> %q, want root -> a", res.OldParentID, res.NewParentID)
	}
	idx := mindmap.NewIndex(res.Doc)
	a := idx.Node("a")
	if len(a.Children) != 1 || a.Children[0].ID != "c" {
		t.Errorf("a.Children = %v, want [c]", idsOf(a.Children))
	}
	root := idx.Node("root")
	if got := idsOf(root.Children); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("root.Children = %v, want [a b]", got)
	}
}

func TestMoveNodeReorder(t *testing.T) {
	doc := wideDoc()
	res, err := MoveNode(doc, "c", "root", 0)
	if err != nil {
		t.Fatalf("MoveNode failed: %v", err)
	}
	if !res.Reorder || res.NoOp {
		t.Errorf("Reorder = %v, NoOp = %v; want reorder, not no-op", res.Reorder, res.NoOp)
	}
	idx := mindmap.NewIndex(res.Doc)
	if got := idsOf(idx.Node("root").Children); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Errorf("root.Children = %v, want [c a b]", got)
	}
}

func TestMoveNodeNoOp(t *testing.T) {
	doc := wideDoc()
	res, err := MoveNode(doc, "b", "root", 1)
	if err != nil {
		t.Fatalf("MoveNode failed: %v", err)
	}
	if !res.NoOp {
		t.Error("same-position move should be a no-op")
	}
	if res.Doc != doc {
		t.Error("no-op should return the input snapshot")
	}
}

func TestMoveNodeAppendsByDefault(t *testing.T) {
	doc := wideDoc()
	res, err := MoveNode(doc, "a", "b", -1)
	if err != nil {
		t.Fatalf("MoveNode failed: %v", err)
	}
	idx := mindmap.NewIndex(res.Doc)
	b := idx.Node("b")
	if len(b.Children) != 1 || b.Children[0].ID != "a" {
		t.Errorf("b.Children = %v, want [a]", idsOf(b.Children))
	}
}

func TestMoveNodeSubtreeVerbatim(t *testing.T) {
	doc := fixedDoc()
	res, err := MoveNode(doc, "c", "b", -1)
	if err != nil {
		t.Fatalf("MoveNode failed: %v", err)
	}
	idx := mindmap.NewIndex(res.Doc)
	c := idx.Node("c")
	if len(c.Children) != 1 || c.Children[0].ID != "d" {
		t.Error("moved subtree lost its descendants")
	}
	if idx.NodeCount() != 5 {
		t.Errorf("NodeCount = %d, want 5", idx.NodeCount())
	}
}

func TestUpdateTopic(t *testing.T) {
	doc := fixedDoc()
	next, err := UpdateTopic(doc, "b", "Bee")
	if err != nil {
		t.Fatalf("UpdateTopic failed: %v", err)
	}
	if mindmap.NewIndex(next).Node("b").Topic != "Bee" {
		t.Error("topic not updated")
	}
	if doc.Root.Children[1].Topic != "B" {
		t.Error("input snapshot modified")
	}

	var nf *mindmap.NodeNotFoundError
	if _, err := UpdateTopic(doc, "missing", "x"); !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NodeNotFoundError", err)
	}
}

func TestTags(t *testing.T) {
	doc := fixedDoc()
	next, err := AddTag(doc, "a", "urgent")
	if err != nil {
		t.Fatalf("AddTag failed: %v", err)
	}
	next, err = AddTag(next, "a", "urgent") // duplicate is a no-op
	if err != nil {
		t.Fatalf("AddTag failed: %v", err)
	}
	idx := mindmap.NewIndex(next)
	if got := idx.Node("a").Tags; len(got) != 1 || got[0] != "urgent" {
		t.Errorf("Tags = %v, want [urgent]", got)
	}
	next, err = RemoveTag(next, "a", "urgent")
	if err != nil {
		t.Fatalf("RemoveTag failed: %v", err)
	}
	if got := mindmap.NewIndex(next).Node("a").Tags; len(got) != 0 {
		t.Errorf("Tags = %v, want empty", got)
	}
}

func idsOf(nodes []*mindmap.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func indexOf(nodes []*mindmap.Node, id string) int {
	for i, n := range nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
