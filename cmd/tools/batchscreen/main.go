package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"resume-validator/internal/extract"
	"resume-validator/internal/report"
	"resume-validator/internal/screening"
)

func main() {
	var dir, blacklistPath, fakeLogPath, genuineLogPath string
	var convertTimeout time.Duration
	flag.StringVar(&dir, "dir", ".", "Directory containing resumes to screen")
	flag.StringVar(&blacklistPath, "blacklist", "fake_companies.csv", "CSV file whose first column lists fake company names")
	flag.StringVar(&fakeLogPath, "fake-log", "Fake_Results.csv", "FAKE result log to append to")
	flag.StringVar(&genuineLogPath, "genuine-log", "Genuine_Results.csv", "GENUINE result log to append to")
	flag.DurationVar(&convertTimeout, "convert-timeout", time.Minute, "Timeout for external DOC conversion")
	flag.Parse()

	blacklist, err := screening.LoadBlacklistFile(blacklistPath)
	if err != nil {
		log.Fatalf("failed to load fake-company list: %v", err)
	}
	log.Printf("Loaded %d fake companies from %s", blacklist.Len(), blacklistPath)

	registry := extract.NewRegistry(extract.ResolveDocConverter(convertTimeout))
	screener := screening.NewScreener(nil)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("failed to read %s: %v", dir, err)
	}

	ctx := context.Background()
	var fakeRows, genuineRows [][]string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !registry.Supported(name) {
			log.Printf("Skipping %s: unsupported file format", name)
			continue
		}

		text, err := registry.ExtractText(ctx, filepath.Join(dir, name))
		if err != nil {
			log.Printf("Warning: %s: extraction failed: %v", name, err)
			text = ""
		}

		res := screener.Classify(name, text, blacklist)
		if res.Verdict == screening.VerdictFake {
			log.Printf("%s: FAKE (matched %q)", name, res.MatchedCompany)
			fakeRows = append(fakeRows, report.FakeRow(res))
		} else {
			log.Printf("%s: GENUINE", name)
			genuineRows = append(genuineRows, report.GenuineRow(res))
		}
	}

	if len(fakeRows) > 0 {
		if err := report.NewFakeLog(fakeLogPath).Append(fakeRows); err != nil {
			log.Fatalf("failed to append fake result log: %v", err)
		}
	}
	if len(genuineRows) > 0 {
		if err := report.NewGenuineLog(genuineLogPath).Append(genuineRows); err != nil {
			log.Fatalf("failed to append genuine result log: %v", err)
		}
	}

	log.Printf("Done: %d fake, %d genuine", len(fakeRows), len(genuineRows))
}
