package tree

import "mindgrid/mindmap"

// branchPalette is the fixed set of branch colors handed out to
// top-level subtrees, round-robin by sibling index.
var branchPalette = []string{
	"#E06C75", // red
	"#98C379", // green
	"#E5C07B", // yellow
	"#61AFEF", // blue
	"#C678DD", // magenta
	"#56B6C2", // cyan
	"#D19A66", // orange
	"#ABB2BF", // grey
}

// childColor picks the branch color for a node being added under
// parent: direct children of the root get the next palette color,
// deeper nodes inherit their parent's color.
func childColor(idx *mindmap.Index, parent *mindmap.Node) string {
	if parent.ID == idx.RootID() {
		return branchPalette[len(parent.Children)%len(branchPalette)]
	}
	return parent.BranchColor
}
