// Package export serializes document snapshots. The JSON form is the
// generic interchange representation; round-tripping through it is
// lossless for every field the core owns.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"mindgrid/mindmap"
)

// MarshalDocument converts a document to indented JSON.
func MarshalDocument(doc *mindmap.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalDocument parses a document from JSON and repairs missing or
// duplicate ids so the unique-id invariant holds for imported data.
func UnmarshalDocument(data []byte) (*mindmap.Document, error) {
	var doc mindmap.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("parsing document: missing root node")
	}
	RepairIDs(&doc)
	return &doc, nil
}

// RepairIDs walks the document and reassigns any missing or duplicate
// node/arrow/summary id. Hand-edited files often carry blank ids;
// fixing them at import keeps every later operation's invariants
// intact.
func RepairIDs(doc *mindmap.Document) {
	seen := make(map[string]bool)
	fresh := func(id string) string {
		if id == "" || seen[id] {
			id = uuid.NewString()
		}
		seen[id] = true
		return id
	}

	stack := []*mindmap.Node{doc.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n.ID = fresh(n.ID)
		stack = append(stack, n.Children...)
	}
	for i := range doc.Arrows {
		doc.Arrows[i].ID = fresh(doc.Arrows[i].ID)
	}
	for i := range doc.Summaries {
		doc.Summaries[i].ID = fresh(doc.Summaries[i].ID)
	}
}
