package screening

import "strings"

// Verdict is the binary classification outcome for one document.
type Verdict string

const (
	VerdictFake    Verdict = "FAKE"
	VerdictGenuine Verdict = "GENUINE"
)

// Result is the classification outcome for one document. MatchedCompany
// and MatchedLine carry the original (pre-normalization) text and are only
// set for a FAKE verdict.
type Result struct {
	Filename       string  `json:"filename"`
	Verdict        Verdict `json:"verdict"`
	MatchedCompany string  `json:"matched_company,omitempty"`
	MatchedLine    string  `json:"matched_line,omitempty"`
}

// Screener classifies extracted resume text against a fake-company list.
type Screener struct {
	splitter *Splitter
}

// NewScreener builds a screener using the given splitter delimiters
// (DefaultDelimiters when nil).
func NewScreener(delimiters []string) *Screener {
	return &Screener{splitter: NewSplitter(delimiters)}
}

// Classify walks the lines of text in order, splits each into candidate
// entities and reports FAKE on the first candidate containing a blacklist
// entry as a contiguous run of normalized words. Matching is at word
// boundaries, never partial-word, so "scamcorp" does not match an entry
// "scamco"; a blacklisted name wrapped in legal suffixes still matches.
// First match in line order, then split order, wins — there is no
// exhaustive enumeration.
//
// Empty text always comes back GENUINE: detection only sees what the
// extractors could surface, so a document whose text was lost to a failed
// or partial extraction is reported GENUINE. That is a known weakness of
// text-coverage-based detection, not a bug here.
func (s *Screener) Classify(filename, text string, list *Blacklist) Result {
	if list != nil && list.Len() > 0 {
		for _, line := range strings.Split(text, "\n") {
			for _, entity := range s.splitter.Split(line) {
				if list.ContainsPhrase(strings.Fields(Normalize(entity))) {
					return Result{
						Filename:       filename,
						Verdict:        VerdictFake,
						MatchedCompany: entity,
						MatchedLine:    strings.TrimSpace(line),
					}
				}
			}
		}
	}
	return Result{Filename: filename, Verdict: VerdictGenuine}
}
