package api

import (
	"fmt"
	"log"
	"time"

	"resume-validator/internal/config"
	"resume-validator/internal/extract"
	"resume-validator/internal/report"
	"resume-validator/internal/screening"
	"resume-validator/internal/storage"
	pkghttp "resume-validator/pkg/http"
)

type API struct {
	cfg        *config.Config
	registry   *extract.Registry
	screener   *screening.Screener
	fakeLog    *report.Log
	genuineLog *report.Log
	httpClient *pkghttp.Client
	db         *storage.DB // nil when DATABASE_URL is not set
}

func NewAPI(cfg *config.Config) (*API, error) {
	converter := extract.ResolveDocConverter(cfg.DocConvertTimeout)
	if converter == nil {
		log.Println("Warning: no DOC converter found (soffice or wvText); .doc files will fail extraction")
	}

	var db *storage.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = storage.NewDB(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		log.Println("Screening runs will be recorded to the database")
	} else {
		log.Println("DATABASE_URL not set, run recording disabled")
	}

	return &API{
		cfg:        cfg,
		registry:   extract.NewRegistry(converter),
		screener:   screening.NewScreener(cfg.Delimiters),
		fakeLog:    report.NewFakeLog(cfg.FakeLogPath),
		genuineLog: report.NewGenuineLog(cfg.GenuineLogPath),
		httpClient: pkghttp.NewClient(30 * time.Second),
		db:         db,
	}, nil
}

func (a *API) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// loadBlacklist fetches the current fake-company list. It is called at the
// start of every screening run, so edits to the backing list between runs
// are always picked up.
func (a *API) loadBlacklist() (*screening.Blacklist, error) {
	if a.cfg.BlacklistURL != "" {
		return screening.FetchBlacklist(a.httpClient, a.cfg.BlacklistURL)
	}
	return screening.LoadBlacklistFile(a.cfg.BlacklistPath)
}
