package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Screening endpoints
	mux.HandleFunc("/api/resumes/screen", a.ScreenHandler)
	mux.HandleFunc("/api/downloads/", a.DownloadHandler)

	// Result log endpoints
	mux.HandleFunc("/api/results/fake", a.FakeResultsHandler)
	mux.HandleFunc("/api/results/genuine", a.GenuineResultsHandler)
	mux.HandleFunc("/api/results/recent", a.RecentResultsHandler)

	return mux
}
