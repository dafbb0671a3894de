package screening

import (
	"sort"
	"strings"
)

// DefaultDelimiters are the tokens and phrases that commonly separate a
// company name from surrounding resume prose ("Worked at X", "X, Y, Z",
// "Experience: X"). The set is configuration, not control flow; callers
// can pass their own to NewSplitter.
var DefaultDelimiters = []string{
	",", ";", " at ", " with ", " in ", "|", "joined", "organization",
	"experience", "worked", "working", "currently", "employer", "company",
	"firm", "served", "project",
}

const separator = "|"

// Splitter breaks a line of resume text into candidate entity substrings.
// It is a best-effort segmentation heuristic, not a tokenizer.
type Splitter struct {
	delimiters []string
}

// NewSplitter builds a splitter over the given delimiter set, falling back
// to DefaultDelimiters when none are given. Delimiters are applied
// longest-first so a phrase delimiter is never fragmented by a shorter
// delimiter it contains.
func NewSplitter(delimiters []string) *Splitter {
	if len(delimiters) == 0 {
		delimiters = DefaultDelimiters
	}
	ds := make([]string, len(delimiters))
	copy(ds, delimiters)
	sort.SliceStable(ds, func(i, j int) bool { return len(ds[i]) > len(ds[j]) })
	return &Splitter{delimiters: ds}
}

// Split returns the candidate entities of line in order. Every delimiter
// occurrence becomes a cut point; fragments that are empty after trimming
// are dropped.
func (s *Splitter) Split(line string) []string {
	for _, d := range s.delimiters {
		line = strings.ReplaceAll(line, d, separator)
	}
	var out []string
	for _, frag := range strings.Split(line, separator) {
		if t := strings.TrimSpace(frag); t != "" {
			out = append(out, t)
		}
	}
	return out
}
