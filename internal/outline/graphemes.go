package outline

import (
	"fmt"
	"os"
	"sync"

	"github.com/rivo/uniseg"
)

// segmentFunc splits a string into user-perceived characters.
type segmentFunc func(string) []string

// segment is the active splitter. graphemeClusters is the correct one;
// runeClusters is the degraded stand-in installed by useRuneFallback.
var segment segmentFunc = graphemeClusters

func graphemeClusters(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

var fallbackWarn sync.Once

// useRuneFallback swaps in code-point splitting and warns once on
// stderr. Multi-rune clusters are counted as several characters
// afterwards, so checkboxes marked with such symbols stop matching as
// done; filtering itself keeps working.
func useRuneFallback() {
	fallbackWarn.Do(func() {
		fmt.Fprintln(os.Stderr, "todosift: grapheme segmentation unavailable, falling back to code points")
	})
	segment = runeClusters
}

func runeClusters(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	for _, r := range s {
		clusters = append(clusters, string(r))
	}
	return clusters
}
