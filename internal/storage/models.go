package storage

import "time"

// Run is one recorded screening batch.
// Note: Keep this minimal for DB persistence; enrich elsewhere if needed.
type Run struct {
	ID           int64     `json:"id"`
	RunUUID      string    `json:"run_uuid"`
	FileCount    int       `json:"file_count"`
	FakeCount    int       `json:"fake_count"`
	GenuineCount int       `json:"genuine_count"`
	StartedAt    time.Time `json:"started_at"`
}

// ResultRecord is one document's classification within a run. The matched
// fields are empty for GENUINE verdicts.
type ResultRecord struct {
	ID             int64     `json:"id"`
	RunID          int64     `json:"run_id"`
	Filename       string    `json:"filename"`
	Verdict        string    `json:"verdict"`
	MatchedCompany string    `json:"matched_company,omitempty"`
	MatchedLine    string    `json:"matched_line,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
