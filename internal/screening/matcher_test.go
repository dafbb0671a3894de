package screening

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blacklistFrom(t *testing.T, entries ...string) *Blacklist {
	t.Helper()
	b, err := ReadBlacklist(strings.NewReader(strings.Join(entries, "\n")))
	require.NoError(t, err)
	return b
}

func TestClassifyWorkedAtPhrasing(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t, "acme corp")

	res := s.Classify("cv.pdf", "I worked at Acme Corp, Inc. from 2019-2021", list)

	assert.Equal(t, VerdictFake, res.Verdict)
	assert.Equal(t, "Acme Corp", res.MatchedCompany)
	assert.Equal(t, "I worked at Acme Corp, Inc. from 2019-2021", res.MatchedLine)
	assert.Equal(t, "cv.pdf", res.Filename)
}

func TestClassifyCaseAndPunctuationInsensitive(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t, "acme corp")

	res := s.Classify("cv.docx", "Worked at Acme Corp.", list)

	assert.Equal(t, VerdictFake, res.Verdict)
	assert.Equal(t, "Acme Corp.", res.MatchedCompany)
	assert.Equal(t, "Worked at Acme Corp.", res.MatchedLine)
}

func TestClassifyLegalSuffixes(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t, "shadow industries")

	res := s.Classify("cv.docx", "Experience: Shadow Industries Pvt Ltd", list)

	assert.Equal(t, VerdictFake, res.Verdict)
	assert.Equal(t, "Experience: Shadow Industries Pvt Ltd", res.MatchedLine)
}

func TestClassifyNoOccurrence(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t, "ghost llc")

	text := "Senior Engineer\nWorked at Honest Inc, then Initech\nEducation: State University"
	res := s.Classify("cv.pdf", text, list)

	assert.Equal(t, VerdictGenuine, res.Verdict)
	assert.Empty(t, res.MatchedCompany)
	assert.Empty(t, res.MatchedLine)
}

func TestClassifyEmptyText(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t, "ghost llc")

	res := s.Classify("scanned.pdf", "", list)

	assert.Equal(t, VerdictGenuine, res.Verdict)
}

func TestClassifyEmptyBlacklist(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t)

	res := s.Classify("cv.pdf", "Worked at Ghost LLC\nWorked at Acme Corp", list)

	assert.Equal(t, VerdictGenuine, res.Verdict)
}

func TestClassifyNoDelimiterLine(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t, "ghost llc")

	res := s.Classify("cv.pdf", "An honest paragraph about nothing", list)

	assert.Equal(t, VerdictGenuine, res.Verdict)
}

func TestClassifyFirstMatchWins(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t, "globex", "initech")

	// both entries appear; the first candidate in line order, then split
	// order, is reported
	res := s.Classify("cv.pdf", "Initech, Globex\nGlobex again", list)

	assert.Equal(t, VerdictFake, res.Verdict)
	assert.Equal(t, "Initech", res.MatchedCompany)
	assert.Equal(t, "Initech, Globex", res.MatchedLine)
}

func TestClassifyLineOrder(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t, "globex")

	res := s.Classify("cv.pdf", "First line, nothing here\nThen Globex Ltd", list)

	assert.Equal(t, VerdictFake, res.Verdict)
	assert.Equal(t, "Then Globex Ltd", res.MatchedLine)
}

func TestClassifyNoPartialWordMatch(t *testing.T) {
	s := NewScreener(nil)
	list := blacklistFrom(t, "scamco")

	// matching is at word boundaries; an entry inside a longer word is not
	// a hit
	res := s.Classify("cv.pdf", "Worked at Scamcorp", list)

	assert.Equal(t, VerdictGenuine, res.Verdict)
}
