package structure

import "fmt"

// flattenOutline turns the nested bookmark tree into TOCEntries in document
// (pre-)order. The traversal is iterative — bookmark trees arrive from
// untrusted files and can be arbitrarily deep, so no recursion here. Entries
// get monotonically increasing synthetic ids in emission order; nodes whose
// destination never resolved to a page are skipped but their children are
// still visited.
func flattenOutline(nodes []OutlineNode) []TOCEntry {
	entries := []TOCEntry{}

	type frame struct {
		node  OutlineNode
		level int
	}
	stack := make([]frame, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: nodes[i]})
	}

	nextID := 1
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.PageNumber >= 1 {
			entries = append(entries, TOCEntry{
				ID:         fmt.Sprintf("toc-%d", nextID),
				Title:      f.node.Title,
				PageNumber: f.node.PageNumber,
				Level:      f.level,
			})
			nextID++
		}
		for i := len(f.node.Items) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Items[i], level: f.level + 1})
		}
	}
	return entries
}
