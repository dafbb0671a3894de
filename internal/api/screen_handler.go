package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"resume-validator/internal/report"
	"resume-validator/internal/screening"
)

// ScreenHandler classifies uploaded resumes against the fake-company list
// @Summary Screen resumes
// @Description Upload one or more resumes (PDF/DOCX/DOC) and classify each as FAKE or GENUINE
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Resume files (repeatable)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resumes/screen [post]
func (a *API) ScreenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	// Parse multipart form (max 32MB in memory)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "upload too large or invalid (max 32MB)", http.StatusBadRequest)
		return
	}

	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["files"]
	}
	if len(files) == 0 {
		http.Error(w, "no files uploaded", http.StatusBadRequest)
		return
	}

	blacklist, err := a.loadBlacklist()
	if err != nil {
		log.Printf("Failed to load fake-company list: %v", err)
		http.Error(w, "failed to load fake-company list", http.StatusInternalServerError)
		return
	}

	runID := uuid.New().String()
	log.Printf("Run %s: screening %d file(s) against %d fake companies", runID, len(files), blacklist.Len())

	var (
		results     []screening.Result
		warnings    []string
		genuine     []report.File
		fakeRows    [][]string
		genuineRows [][]string
	)

	// One document processed fully before the next begins; a bad document
	// degrades to a warning and never aborts the batch.
	for _, fh := range files {
		res, content, warn := a.screenFile(r.Context(), fh, blacklist)
		if warn != "" {
			log.Println("Warning:", warn)
			warnings = append(warnings, warn)
		}
		if res == nil {
			continue
		}
		results = append(results, *res)
		if res.Verdict == screening.VerdictFake {
			fakeRows = append(fakeRows, report.FakeRow(*res))
		} else {
			genuineRows = append(genuineRows, report.GenuineRow(*res))
			genuine = append(genuine, report.File{Name: filepath.Base(fh.Filename), Content: content})
		}
	}

	if len(fakeRows) > 0 {
		if err := a.fakeLog.Append(fakeRows); err != nil {
			log.Printf("Failed to append fake result log: %v", err)
			warnings = append(warnings, "fake result log could not be updated")
		}
	}
	if len(genuineRows) > 0 {
		if err := a.genuineLog.Append(genuineRows); err != nil {
			log.Printf("Failed to append genuine result log: %v", err)
			warnings = append(warnings, "genuine result log could not be updated")
		}
	}

	a.recordRun(r.Context(), runID, results)

	downloadURL := a.stageGenuineDownloads(runID, genuine, &warnings)

	response := map[string]interface{}{
		"run_id":             runID,
		"file_count":         len(files),
		"fake_count":         len(fakeRows),
		"genuine_count":      len(genuineRows),
		"results":            results,
		"processing_time_ms": time.Since(startTime).Milliseconds(),
	}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	if downloadURL != "" {
		response["genuine_download"] = downloadURL
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode response for run %s: %v", runID, err)
	}
}

// screenFile runs one uploaded document through save, extract and classify.
// It returns the classification (nil when the file was skipped entirely),
// the raw document bytes for download staging, and a human-readable warning
// naming the file and the failure kind when something went wrong.
func (a *API) screenFile(ctx context.Context, fh *multipart.FileHeader, list *screening.Blacklist) (*screening.Result, []byte, string) {
	filename := filepath.Base(fh.Filename)

	if !a.registry.Supported(filename) {
		return nil, nil, fmt.Sprintf("%s: unsupported file format", filename)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Sprintf("%s: open upload: %v", filename, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, fmt.Sprintf("%s: read upload: %v", filename, err)
	}

	if err := os.MkdirAll(a.cfg.UploadsDir, 0755); err != nil {
		return nil, nil, fmt.Sprintf("%s: create uploads dir: %v", filename, err)
	}
	path := filepath.Join(a.cfg.UploadsDir, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return nil, nil, fmt.Sprintf("%s: save upload: %v", filename, err)
	}
	defer os.Remove(path)

	warn := ""
	text, err := a.registry.ExtractText(ctx, path)
	if err != nil {
		// Degrade to empty text: the document is classified on what could
		// be extracted, which is nothing, and comes back GENUINE.
		warn = fmt.Sprintf("%s: extraction failed: %v", filename, err)
		text = ""
	}

	res := a.screener.Classify(filename, text, list)
	return &res, content, warn
}

// recordRun persists the batch to Postgres when configured. Recording
// failures are logged, never fatal to the run.
func (a *API) recordRun(ctx context.Context, runUUID string, results []screening.Result) {
	if a.db == nil {
		return
	}

	fake, genuine := 0, 0
	for _, r := range results {
		if r.Verdict == screening.VerdictFake {
			fake++
		} else {
			genuine++
		}
	}

	runID, err := a.db.SaveRun(ctx, runUUID, len(results), fake, genuine)
	if err != nil {
		log.Printf("Failed to record run %s: %v", runUUID, err)
		return
	}
	for _, r := range results {
		if err := a.db.SaveResult(ctx, runID, r.Filename, string(r.Verdict), r.MatchedCompany, r.MatchedLine); err != nil {
			log.Printf("Failed to record result for %s: %v", r.Filename, err)
		}
	}
}

// stageGenuineDownloads makes the genuine originals available for
// download: a single genuine document directly under its own name, several
// as one ZIP bundle. Returns the download URL, or "" when there is nothing
// to stage or staging failed.
func (a *API) stageGenuineDownloads(runID string, files []report.File, warnings *[]string) string {
	if len(files) == 0 {
		return ""
	}

	dir := filepath.Join(a.cfg.DownloadsDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Failed to create downloads dir for run %s: %v", runID, err)
		*warnings = append(*warnings, "genuine downloads unavailable")
		return ""
	}

	if len(files) == 1 {
		name := files[0].Name
		if err := os.WriteFile(filepath.Join(dir, name), files[0].Content, 0644); err != nil {
			log.Printf("Failed to stage %s for run %s: %v", name, runID, err)
			*warnings = append(*warnings, "genuine downloads unavailable")
			return ""
		}
		return "/api/downloads/" + runID + "/" + name
	}

	const bundleName = "genuine_resumes.zip"
	f, err := os.Create(filepath.Join(dir, bundleName))
	if err != nil {
		log.Printf("Failed to create bundle for run %s: %v", runID, err)
		*warnings = append(*warnings, "genuine downloads unavailable")
		return ""
	}
	defer f.Close()

	if err := report.WriteBundle(f, files); err != nil {
		log.Printf("Failed to write bundle for run %s: %v", runID, err)
		*warnings = append(*warnings, "genuine downloads unavailable")
		return ""
	}
	return "/api/downloads/" + runID + "/" + bundleName
}
