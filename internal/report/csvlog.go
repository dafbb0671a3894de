package report

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"resume-validator/internal/screening"
)

var (
	fakeHeader    = []string{"Resume", "Matched Fake Company", "Line", "Result"}
	genuineHeader = []string{"Resume", "Result"}
)

// Log is an appendable tabular result log backed by a CSV file. Appending
// reads the existing rows first and rewrites the whole file; a missing,
// unreadable or corrupt file is treated as empty rather than failing the
// screening run.
type Log struct {
	path   string
	header []string
}

// NewFakeLog opens the FAKE result log at path
// (columns: resume, matched company, matched line, verdict).
func NewFakeLog(path string) *Log {
	return &Log{path: path, header: fakeHeader}
}

// NewGenuineLog opens the GENUINE result log at path
// (columns: resume, verdict).
func NewGenuineLog(path string) *Log {
	return &Log{path: path, header: genuineHeader}
}

// FakeRow formats a FAKE classification as a log row.
func FakeRow(r screening.Result) []string {
	return []string{r.Filename, r.MatchedCompany, r.MatchedLine, string(r.Verdict)}
}

// GenuineRow formats a GENUINE classification as a log row.
func GenuineRow(r screening.Result) []string {
	return []string{r.Filename, string(r.Verdict)}
}

// Append adds rows after the existing log contents and rewrites the file.
func (l *Log) Append(rows [][]string) error {
	existing := l.read()

	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("write result log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(l.header); err != nil {
		return fmt.Errorf("write result log: %w", err)
	}
	if err := w.WriteAll(existing); err != nil {
		return fmt.Errorf("write result log: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write result log: %w", err)
	}
	w.Flush()
	return w.Error()
}

// Records returns the logged rows keyed by column name.
func (l *Log) Records() []map[string]string {
	rows := l.read()
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(l.header))
		for i, col := range l.header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

// read returns the current rows without the header. Any read or parse
// failure degrades to an empty log.
func (l *Log) read() [][]string {
	f, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		log.Printf("Result log %s is unreadable, treating as empty: %v", l.path, err)
		return nil
	}
	if len(records) > 0 && equalRow(records[0], l.header) {
		records = records[1:]
	}
	return records
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
