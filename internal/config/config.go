package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"resume-validator/internal/screening"
)

type Config struct {
	Port        string
	DatabaseURL string // optional; empty disables run recording

	// Fake-company list source. BlacklistURL takes precedence when set.
	BlacklistPath string
	BlacklistURL  string

	// Result logs (CSV, appended per run)
	FakeLogPath    string
	GenuineLogPath string

	UploadsDir   string
	DownloadsDir string

	// Timeout for the external DOC conversion subprocess
	DocConvertTimeout time.Duration

	// Entity splitter delimiter set
	Delimiters []string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{
		Port:              envOr("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		BlacklistPath:     envOr("BLACKLIST_PATH", "fake_companies.csv"),
		BlacklistURL:      os.Getenv("BLACKLIST_URL"),
		FakeLogPath:       envOr("FAKE_LOG_PATH", "Fake_Results.csv"),
		GenuineLogPath:    envOr("GENUINE_LOG_PATH", "Genuine_Results.csv"),
		UploadsDir:        envOr("UPLOADS_DIR", "./uploads"),
		DownloadsDir:      envOr("DOWNLOADS_DIR", "./downloads"),
		DocConvertTimeout: time.Minute,
		Delimiters:        screening.DefaultDelimiters,
	}

	if v := os.Getenv("DOC_CONVERT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.DocConvertTimeout = d
		} else {
			log.Printf("Warning: invalid DOC_CONVERT_TIMEOUT %q, using %s", v, cfg.DocConvertTimeout)
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
