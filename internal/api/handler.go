package api

import (
	"github.com/go-playground/validator/v10"

	"ats-scanner/internal/analysis"
	"ats-scanner/internal/config"
	"ats-scanner/internal/extract"
	"ats-scanner/internal/llm"
	"ats-scanner/internal/report"
	"ats-scanner/internal/roles"
)

type API struct {
	cfg       *config.Config
	catalog   *roles.Catalog
	extractor *extract.Extractor
	llm       *llm.Service
	analysis  *analysis.Service
	validate  *validator.Validate
}

func NewAPI(cfg *config.Config) *API {
	catalog := roles.Default()
	extractor := extract.NewExtractor(cfg.TikaURL, cfg.UploadsDir)
	llmService := llm.NewService(cfg.OllamaURL, cfg.OllamaModel)
	analysisService := analysis.NewService(catalog, llmService, report.NewGenerator(), cfg.ReportsDir)

	return &API{
		cfg:       cfg,
		catalog:   catalog,
		extractor: extractor,
		llm:       llmService,
		analysis:  analysisService,
		validate:  validator.New(),
	}
}
