package sticky

// BuildStack collects header entries from context up to baseLevel,
// outermost first. Walking stops at the first non-folder.
func BuildStack(context Node, baseLevel int) []HeaderEntry {
	var entries []HeaderEntry
	for cur := context; cur != nil && cur.IsFolder() && cur.Level() >= baseLevel; cur = cur.Parent() {
		entries = append(entries, HeaderEntry{
			NoteID:           cur.ID(),
			Title:            cur.Title(),
			Icon:             cur.Icon(),
			Level:            cur.Level(),
			ChildFolderCount: childFolderCount(cur),
		})
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

func childFolderCount(n Node) int {
	count := 0
	for _, child := range n.Children() {
		if child != nil && child.IsFolder() {
			count++
		}
	}
	return count
}
