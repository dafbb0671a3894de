package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-validator/internal/screening"
)

func TestAppendToFreshLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Fake_Results.csv")
	l := NewFakeLog(path)

	res := screening.Result{
		Filename:       "cv.pdf",
		Verdict:        screening.VerdictFake,
		MatchedCompany: "Acme Corp",
		MatchedLine:    "Worked at Acme Corp",
	}
	require.NoError(t, l.Append([][]string{FakeRow(res)}))

	records := l.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "cv.pdf", records[0]["Resume"])
	assert.Equal(t, "Acme Corp", records[0]["Matched Fake Company"])
	assert.Equal(t, "Worked at Acme Corp", records[0]["Line"])
	assert.Equal(t, "FAKE", records[0]["Result"])
}

func TestAppendPreservesExistingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Genuine_Results.csv")
	l := NewGenuineLog(path)

	first := screening.Result{Filename: "a.pdf", Verdict: screening.VerdictGenuine}
	second := screening.Result{Filename: "b.docx", Verdict: screening.VerdictGenuine}

	require.NoError(t, l.Append([][]string{GenuineRow(first)}))
	before := len(l.Records())

	require.NoError(t, l.Append([][]string{GenuineRow(second)}))
	records := l.Records()

	// append semantics: exactly one row gained, prior contents intact
	assert.Equal(t, before+1, len(records))
	assert.Equal(t, "a.pdf", records[0]["Resume"])
	assert.Equal(t, "b.docx", records[1]["Resume"])
}

func TestAppendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Fake_Results.csv")
	l := NewFakeLog(path)

	old := [][]string{
		{"one.pdf", "Acme Corp", "Worked at Acme Corp", "FAKE"},
		{"two.doc", "Ghost LLC", "Ghost LLC employee", "FAKE"},
	}
	require.NoError(t, l.Append(old))

	batch := [][]string{
		{"three.docx", "Globex", "Joined Globex", "FAKE"},
	}
	require.NoError(t, l.Append(batch))

	// re-reading yields the union of old and new rows, nothing more
	records := l.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "one.pdf", records[0]["Resume"])
	assert.Equal(t, "two.doc", records[1]["Resume"])
	assert.Equal(t, "three.docx", records[2]["Resume"])
}

func TestAppendTreatsCorruptLogAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Fake_Results.csv")
	require.NoError(t, os.WriteFile(path, []byte("\"unclosed quote\nnot,a,consistent\"row"), 0644))

	l := NewFakeLog(path)
	res := screening.Result{
		Filename:       "cv.pdf",
		Verdict:        screening.VerdictFake,
		MatchedCompany: "Acme Corp",
		MatchedLine:    "Worked at Acme Corp",
	}
	require.NoError(t, l.Append([][]string{FakeRow(res)}))

	records := l.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "cv.pdf", records[0]["Resume"])
}

func TestRecordsOfMissingLog(t *testing.T) {
	l := NewGenuineLog(filepath.Join(t.TempDir(), "never_written.csv"))
	assert.Empty(t, l.Records())
}
