package outline

import (
	"strings"
	"unicode/utf8"
)

// DefaultDoneMarkers are the bracket contents treated as completed or
// cancelled when no custom marker string is configured.
const DefaultDoneMarkers = "xX-"

// DefaultBullets are the symbols recognized as checkbox bullets.
const DefaultBullets = "-*+"

const maxHeadingLevel = 6

// Markers is the set of accepted done markers, keyed by grapheme
// cluster.
type Markers map[string]struct{}

// NewMarkers segments s into grapheme clusters and builds the accepted
// marker set. An empty s yields the default set.
func NewMarkers(s string) Markers {
	if s == "" {
		s = DefaultDoneMarkers
	}
	set := make(Markers)
	for _, cluster := range segment(s) {
		set[cluster] = struct{}{}
	}
	return set
}

// settings carries the per-invocation classifier configuration through
// the pipeline stages.
type settings struct {
	markers Markers
	bullets string
}

func (s settings) checkbox(line string) bool {
	_, ok := checkboxContent(line, s.bullets)
	return ok
}

// done reports whether the line is a checkbox whose bracket content is
// exactly one grapheme cluster from the marker set. Zero characters,
// several clusters, or an unknown cluster all mean "not done".
func (s settings) done(line string) bool {
	content, ok := checkboxContent(line, s.bullets)
	if !ok {
		return false
	}
	clusters := segment(content)
	if len(clusters) != 1 {
		return false
	}
	_, accepted := s.markers[clusters[0]]
	return accepted
}

// HeadingLevel returns 1-6 for a heading line (that many leading '#'
// marks followed by at least one whitespace character) and 0 for
// anything else.
func HeadingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0
	}
	if level >= len(line) || !isSpaceByte(line[level]) {
		return 0
	}
	return level
}

// IsCheckbox reports whether the line is a bulleted checkbox item
// using the default bullet symbols. Checked state is not considered.
func IsCheckbox(line string) bool {
	_, ok := checkboxContent(line, DefaultBullets)
	return ok
}

// IsDone reports whether the line is a checkbox completed or cancelled
// with one of the given markers, using the default bullet symbols.
func IsDone(line string, markers Markers) bool {
	return settings{markers: markers, bullets: DefaultBullets}.done(line)
}

// checkboxContent extracts the bracket content of a checkbox line:
// optional leading whitespace, a bullet symbol, whitespace, then a
// [...] marker with at least one character inside. The content runs to
// the first closing bracket.
func checkboxContent(line, bullets string) (string, bool) {
	rest := strings.TrimLeft(line, " \t")
	bullet, size := utf8.DecodeRuneInString(rest)
	if size == 0 || !strings.ContainsRune(bullets, bullet) {
		return "", false
	}
	rest = rest[size:]
	trimmed := strings.TrimLeft(rest, " \t")
	if len(trimmed) == len(rest) {
		// No whitespace after the bullet.
		return "", false
	}
	rest = trimmed
	if len(rest) == 0 || rest[0] != '[' {
		return "", false
	}
	end := strings.IndexByte(rest, ']')
	if end <= 1 {
		// Missing bracket or empty [] content.
		return "", false
	}
	return rest[1:end], true
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}
