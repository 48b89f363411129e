package outline

import (
	"reflect"
	"testing"
)

func TestBuildTreeNestsByHeadingLevel(t *testing.T) {
	root := buildTree([]string{
		"intro",
		"# A",
		"a text",
		"## A1",
		"- [ ] a1 task",
		"## A2",
		"### A2a",
		"# B",
		"b text",
	})

	if root.level != 0 || root.heading != "" {
		t.Fatalf("root = {level:%d heading:%q}, want synthetic root", root.level, root.heading)
	}
	if !reflect.DeepEqual(root.content, []string{"intro"}) {
		t.Fatalf("root content = %q, want [intro]", root.content)
	}
	if len(root.children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.children))
	}

	a := root.children[0]
	if a.heading != "# A" || !reflect.DeepEqual(a.content, []string{"a text"}) {
		t.Fatalf("node A = {%q %q}, unexpected", a.heading, a.content)
	}
	if len(a.children) != 2 {
		t.Fatalf("A children = %d, want 2 (A1, A2)", len(a.children))
	}
	if a.children[0].heading != "## A1" || a.children[1].heading != "## A2" {
		t.Fatalf("A children = %q, %q", a.children[0].heading, a.children[1].heading)
	}
	if !reflect.DeepEqual(a.children[0].content, []string{"- [ ] a1 task"}) {
		t.Fatalf("A1 content = %q", a.children[0].content)
	}
	if len(a.children[1].children) != 1 || a.children[1].children[0].heading != "### A2a" {
		t.Fatalf("A2 children = %+v, want single A2a", a.children[1].children)
	}

	b := root.children[1]
	if b.heading != "# B" || !reflect.DeepEqual(b.content, []string{"b text"}) {
		t.Fatalf("node B = {%q %q}, unexpected", b.heading, b.content)
	}
}

func TestBuildTreeClosesDeeperSiblings(t *testing.T) {
	// A level-2 heading after a level-3 one pops back to the level-1
	// parent instead of nesting under the level-3 node.
	root := buildTree([]string{
		"# Top",
		"### Deep",
		"## Shallow",
	})

	top := root.children[0]
	if len(top.children) != 2 {
		t.Fatalf("top children = %d, want Deep and Shallow as siblings", len(top.children))
	}
	if top.children[0].heading != "### Deep" || top.children[1].heading != "## Shallow" {
		t.Fatalf("top children = %q, %q", top.children[0].heading, top.children[1].heading)
	}
}

func TestBuildTreeDropsBlankLines(t *testing.T) {
	root := buildTree([]string{"", "a", "   ", "\t", "b", ""})
	if !reflect.DeepEqual(root.content, []string{"a", "b"}) {
		t.Fatalf("content = %q, want blanks dropped", root.content)
	}
}

func TestBuildTreeContentBelongsToNearestHeading(t *testing.T) {
	root := buildTree([]string{
		"# H",
		"## S",
		"under s",
		"# H2",
		"under h2",
	})
	s := root.children[0].children[0]
	if !reflect.DeepEqual(s.content, []string{"under s"}) {
		t.Fatalf("S content = %q", s.content)
	}
	if len(root.children[0].content) != 0 {
		t.Fatalf("H content = %q, want empty", root.children[0].content)
	}
	if !reflect.DeepEqual(root.children[1].content, []string{"under h2"}) {
		t.Fatalf("H2 content = %q", root.children[1].content)
	}
}
