package outline

// prune removes completed checkbox lines from n's content, prunes its
// children post-order, and returns nil when a heading node ends up
// with no content and no surviving children. Emptiness propagates
// bottom-up: a heading whose sub-headings all emptied out is itself
// removed. The root is exempt and is always returned.
func prune(n *node, conf settings) *node {
	content := n.content[:0]
	for _, line := range n.content {
		if conf.done(line) {
			continue
		}
		content = append(content, line)
	}
	n.content = content

	children := n.children[:0]
	for _, child := range n.children {
		if kept := prune(child, conf); kept != nil {
			children = append(children, kept)
		}
	}
	n.children = children

	if n.level > 0 && len(n.content) == 0 && len(n.children) == 0 {
		return nil
	}
	return n
}
