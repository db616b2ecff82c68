package api

import (
	"net/http"
	"sync"
	"time"

	"ats-scanner/internal/roles"
)

const probeTimeout = 2 * time.Second

// RootHandler returns a service banner
// @Summary Service banner
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (a *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "ATS Resume Scanner API is running"})
}

// StatusHandler reports external dependency reachability
// @Summary External service status
// @Description Check whether the Tika extraction service and the Ollama LLM are reachable; each probe has its own timeout
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /status [get]
func (a *API) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Probes run concurrently and are independent: one service being
	// down or slow must not mask or delay the other's state.
	var tikaErr, ollamaErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		tikaErr = a.extractor.Ping(r.Context(), probeTimeout)
	}()
	go func() {
		defer wg.Done()
		ollamaErr = a.llm.Ping(r.Context(), probeTimeout)
	}()
	wg.Wait()

	status := map[string]string{
		"tika":   "online",
		"ollama": "online",
	}
	if tikaErr != nil {
		status["tika"] = "offline/unavailable"
	}
	if ollamaErr != nil {
		status["ollama"] = "offline/unavailable"
	}

	writeJSON(w, http.StatusOK, status)
}

// RolesHandler dumps the role catalog
// @Summary List role profiles
// @Tags roles
// @Produce json
// @Success 200 {object} map[string]roles.Profile
// @Router /roles [get]
func (a *API) RolesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	catalog := make(map[string]*roles.Profile, a.catalog.Len())
	for _, p := range a.catalog.All() {
		catalog[p.ID] = p
	}
	writeJSON(w, http.StatusOK, catalog)
}
