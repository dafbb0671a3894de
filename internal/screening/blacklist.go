package screening

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Blacklist is the set of normalized fake company names. It is loaded once
// per screening run and never mutated during one, so a batch always sees a
// consistent list and edits between runs are always picked up.
type Blacklist struct {
	entries  map[string]struct{}
	maxWords int
}

// Len returns the number of distinct entries.
func (b *Blacklist) Len() int {
	return len(b.entries)
}

// Contains reports whether the already-normalized name is on the list.
func (b *Blacklist) Contains(normalized string) bool {
	_, ok := b.entries[normalized]
	return ok
}

// ContainsPhrase reports whether any contiguous run of the given normalized
// words equals a blacklist entry. Matching at word boundaries keeps
// partial-word overlap ("scamco" inside "scamcorp") from matching while a
// name wrapped in suffixes ("Shadow Industries Pvt Ltd") still does.
func (b *Blacklist) ContainsPhrase(words []string) bool {
	for n := 1; n <= b.maxWords && n <= len(words); n++ {
		for i := 0; i+n <= len(words); i++ {
			if _, ok := b.entries[strings.Join(words[i:i+n], " ")]; ok {
				return true
			}
		}
	}
	return false
}

// ReadBlacklist parses tabular (CSV) data whose first column lists fake
// company names, one per row. Entries are normalized and deduplicated;
// rows that are empty after normalization (whitespace or punctuation only)
// are excluded.
func ReadBlacklist(r io.Reader) (*Blacklist, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	b := &Blacklist{entries: make(map[string]struct{})}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read fake-company list: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		// collapse internal whitespace so list entries and candidates are
		// keyed identically
		words := strings.Fields(Normalize(record[0]))
		if len(words) == 0 {
			continue
		}
		b.entries[strings.Join(words, " ")] = struct{}{}
		if len(words) > b.maxWords {
			b.maxWords = len(words)
		}
	}
	return b, nil
}

// LoadBlacklistFile reads the fake-company list from a local CSV file.
func LoadBlacklistFile(path string) (*Blacklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fake-company list: %w", err)
	}
	defer f.Close()
	return ReadBlacklist(f)
}

// Fetcher retrieves a document over HTTP.
type Fetcher interface {
	Get(url string) (*http.Response, error)
}

// FetchBlacklist reads the fake-company list from a remote CSV source.
func FetchBlacklist(client Fetcher, url string) (*Blacklist, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch fake-company list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch fake-company list: unexpected status %s", resp.Status)
	}
	return ReadBlacklist(resp.Body)
}
