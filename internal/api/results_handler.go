package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"resume-validator/internal/report"
)

// FakeResultsHandler returns the FAKE result log
// @Summary List FAKE results
// @Description Current contents of the FAKE result log
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /results/fake [get]
func (a *API) FakeResultsHandler(w http.ResponseWriter, r *http.Request) {
	a.writeLog(w, r, a.fakeLog)
}

// GenuineResultsHandler returns the GENUINE result log
// @Summary List GENUINE results
// @Description Current contents of the GENUINE result log
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /results/genuine [get]
func (a *API) GenuineResultsHandler(w http.ResponseWriter, r *http.Request) {
	a.writeLog(w, r, a.genuineLog)
}

func (a *API) writeLog(w http.ResponseWriter, r *http.Request, l *report.Log) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records := l.Records()
	response := map[string]interface{}{
		"total":   len(records),
		"results": records,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RecentResultsHandler returns the latest recorded classifications
// @Summary List recent classifications
// @Description Latest classifications recorded to the database, newest first
// @Tags results
// @Produce json
// @Param limit query int false "Limit results" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string
// @Router /results/recent [get]
func (a *API) RecentResultsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.db == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	records, err := a.db.RecentResults(r.Context(), limit)
	if err != nil {
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"total":   len(records),
		"results": records,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// DownloadHandler serves genuine originals staged by a screening run
// @Summary Download genuine resumes
// @Description Download a staged genuine original or the ZIP bundle of a run
// @Tags resumes
// @Produce octet-stream
// @Param run path string true "Run ID"
// @Param file path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /downloads/{run}/{file} [get]
func (a *API) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/downloads/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	// Base strips any traversal from the requested names
	run, name := filepath.Base(parts[0]), filepath.Base(parts[1])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, filepath.Join(a.cfg.DownloadsDir, run, name))
}
