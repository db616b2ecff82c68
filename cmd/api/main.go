package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "ats-scanner/docs" // Swagger docs
	"ats-scanner/internal/api"
	"ats-scanner/internal/config"
)

// @title ATS Resume Scanner API
// @version 1.0
// @description Hybrid ATS resume scoring: keyword density, formatting heuristics and LLM analysis blended into one score

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	cfg := config.LoadConfig()

	if err := os.MkdirAll(cfg.ReportsDir, 0755); err != nil {
		log.Fatal("creating reports dir:", err)
	}

	apiSrv := api.NewAPI(cfg)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,  // file uploads
		WriteTimeout: 200 * time.Second, // LLM analysis (180s) + buffer
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("ATS scanner API listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
