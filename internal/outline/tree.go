package outline

// node is one element of the heading tree. The root has level 0 and no
// heading; every other node holds a heading line of level 1-6. content
// keeps the non-heading, non-blank lines appearing directly under the
// node's heading, in document order.
type node struct {
	level    int
	heading  string
	content  []string
	children []*node
}

// buildTree nests a flat line sequence under a synthetic root using a
// stack of open headings: a heading of level L closes every open node
// of level >= L before becoming a child of what remains on top. Blank
// lines are discarded here and reintroduced only by the formatter.
func buildTree(lines []string) *node {
	root := &node{}
	stack := []*node{root}

	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		level := HeadingLevel(line)
		if level == 0 {
			top := stack[len(stack)-1]
			top.content = append(top.content, line)
			continue
		}
		for stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		child := &node{level: level, heading: line}
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, child)
		stack = append(stack, child)
	}

	return root
}
