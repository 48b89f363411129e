// Package outline extracts open work items from a markdown-like
// outline document. The engine is a pure function of its input: it
// nests lines under their headings, removes completed checkbox items
// together with any heading subtree left empty, and re-serializes the
// survivors with blank-line padding around task groups.
package outline

// Options configures a single Filter invocation.
type Options struct {
	// DoneMarkers is segmented into grapheme clusters to form the set
	// of bracket contents treated as completed or cancelled. Empty
	// means the default set "xX-".
	DoneMarkers string
	// Bullets are the symbols recognized as checkbox bullets. Empty
	// means "-*+".
	Bullets string
	// WithChildren is accepted for interface compatibility and
	// currently has no effect on filtering.
	WithChildren bool
}

func (o Options) settings() settings {
	bullets := o.Bullets
	if bullets == "" {
		bullets = DefaultBullets
	}
	return settings{markers: NewMarkers(o.DoneMarkers), bullets: bullets}
}

// Result is the outcome of a filter run plus bookkeeping counts.
type Result struct {
	Lines   []string `json:"lines"`
	Open    int      `json:"open"`
	Removed int      `json:"removed"`
	Total   int      `json:"total"`
}

// Filter returns the open-item view of the document given as lines
// (one string per line, no trailing newline characters). The result
// never contains two consecutive blanks, a blank directly before a
// heading, or leading/trailing blanks; it is empty when no open
// content survives.
func Filter(lines []string, opts Options) []string {
	return filter(lines, opts.settings())
}

// FilterStats runs Filter and reports counts alongside the output:
// open checkbox lines surviving in the result, checked lines removed
// from the input, and the total input line count.
func FilterStats(lines []string, opts Options) Result {
	conf := opts.settings()
	res := Result{Lines: filter(lines, conf), Total: len(lines)}
	for _, line := range lines {
		if conf.done(line) {
			res.Removed++
		}
	}
	for _, line := range res.Lines {
		if conf.checkbox(line) {
			res.Open++
		}
	}
	return res
}

func filter(lines []string, conf settings) []string {
	root := prune(buildTree(lines), conf)
	return clean(reflow(root, conf, nil))
}
