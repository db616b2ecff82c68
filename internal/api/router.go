package api

import (
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:"+a.cfg.Port+"/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API endpoints
	mux.HandleFunc("/", a.RootHandler)
	mux.HandleFunc("/status", a.StatusHandler)
	mux.HandleFunc("/roles", a.RolesHandler)
	mux.HandleFunc("/upload", a.UploadHandler)
	mux.HandleFunc("/analyze", a.AnalyzeHandler)

	// Generated PDF reports
	mux.Handle("/reports/", http.StripPrefix("/reports/",
		http.FileServer(http.Dir(a.cfg.ReportsDir))))

	// The web frontend runs on a different origin.
	return cors.AllowAll().Handler(mux)
}
