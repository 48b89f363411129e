package outline

// run is a maximal stretch of content lines that are uniformly
// checkbox or uniformly non-checkbox.
type run struct {
	checkbox bool
	lines    []string
}

// contentRuns partitions already-pruned content into maximal runs,
// preserving order. Checked/unchecked is not distinguished here;
// pruning already removed the checked lines.
func contentRuns(content []string, conf settings) []run {
	var runs []run
	for _, line := range content {
		cb := conf.checkbox(line)
		if len(runs) == 0 || runs[len(runs)-1].checkbox != cb {
			runs = append(runs, run{checkbox: cb})
		}
		last := &runs[len(runs)-1]
		last.lines = append(last.lines, line)
	}
	return runs
}

// reflow serializes a pruned node pre-order into out. Checkbox runs
// are padded with blank separators so task blocks read as discrete
// groups; a heading binds tightly to the run that follows it, so the
// first run directly under a heading gets no leading blank.
func reflow(n *node, conf settings, out []string) []string {
	if n.heading != "" {
		out = append(out, n.heading)
	}
	for i, r := range contentRuns(n.content, conf) {
		if !r.checkbox {
			out = append(out, r.lines...)
			continue
		}
		if i > 0 || n.heading == "" {
			out = append(out, "")
		}
		out = append(out, r.lines...)
		out = append(out, "")
	}
	for _, child := range n.children {
		out = reflow(child, conf, out)
	}
	return out
}

// clean normalizes blank lines in the flattened sequence: a blank is
// dropped when the previous kept line is blank or the next non-blank
// line is a heading, and the result is trimmed of leading and trailing
// blanks.
func clean(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if !isBlank(line) {
			out = append(out, line)
			continue
		}
		if len(out) > 0 && isBlank(out[len(out)-1]) {
			continue
		}
		if next, ok := nextNonBlank(lines, i+1); ok && HeadingLevel(next) > 0 {
			continue
		}
		out = append(out, line)
	}

	for len(out) > 0 && isBlank(out[0]) {
		out = out[1:]
	}
	for len(out) > 0 && isBlank(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func nextNonBlank(lines []string, from int) (string, bool) {
	for _, line := range lines[from:] {
		if !isBlank(line) {
			return line, true
		}
	}
	return "", false
}
