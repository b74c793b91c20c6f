package export

import (
	"fmt"
	"strings"

	"mindgrid/mindmap"
)

// Outline renders the tree as an indented plain-text outline with an
// appendix for arrows and summaries. Collapsed subtrees are shown with
// an ellipsis marker rather than omitted, since the outline is a
// document view and not a layout.
func Outline(doc *mindmap.Document) string {
	var b strings.Builder
	idx := mindmap.NewIndex(doc)

	type frame struct {
		node  *mindmap.Node
		depth int
	}
	stack := []frame{{node: doc.Root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b.WriteString(strings.Repeat("  ", f.depth))
		b.WriteString("- ")
		b.WriteString(f.node.Topic)
		if f.node.HyperLink != "" {
			fmt.Fprintf(&b, " <%s>", f.node.HyperLink)
		}
		if !f.node.Expanded && len(f.node.Children) > 0 {
			b.WriteString(" [...]")
		}
		b.WriteByte('\n')
		if f.node.Expanded {
			for i := len(f.node.Children) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: f.node.Children[i], depth: f.depth + 1})
			}
		}
	}

	if len(doc.Arrows) > 0 {
		b.WriteString("\narrows:\n")
		for _, a := range doc.Arrows {
			from, to := topicOf(idx, a.From), topicOf(idx, a.To)
			link := "->"
			if a.Bidirectional {
				link = "<->"
			}
			if a.Label != "" {
				fmt.Fprintf(&b, "  %s %s %s (%s)\n", from, link, to, a.Label)
			} else {
				fmt.Fprintf(&b, "  %s %s %s\n", from, link, to)
			}
		}
	}
	if len(doc.Summaries) > 0 {
		b.WriteString("\nsummaries:\n")
		for _, s := range doc.Summaries {
			fmt.Fprintf(&b, "  %s [%d..%d] %s\n", topicOf(idx, s.ParentID), s.Start, s.End, s.Label)
		}
	}
	return b.String()
}

func topicOf(idx *mindmap.Index, id string) string {
	if n := idx.Node(id); n != nil {
		return n.Topic
	}
	return "?"
}
