package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/qsr-digital/offer-configurator/internal/api"
	"github.com/qsr-digital/offer-configurator/internal/api/middleware"
	"github.com/qsr-digital/offer-configurator/internal/builder"
	"github.com/qsr-digital/offer-configurator/internal/service"
	"github.com/qsr-digital/offer-configurator/internal/store"
	"github.com/qsr-digital/offer-configurator/pkg/kvstore"
)

func main() {
	// pick the persistence backend from env (file by default)
	cfg := kvstore.LoadConfig()

	kv, closeStore, err := kvstore.Open(cfg)
	if err != nil {
		log.Fatalf("store open: %v", err)
	}
	defer closeStore()

	// rehydrate the offer bank; bad persisted state means an empty bank
	bank := store.Open(context.Background(), kv)
	log.Printf("offer bank loaded: %d offers (%s backend)", bank.Len(), cfg.Backend)

	session := service.NewSession(bank, builder.ManualID(time.Now))
	handler := api.NewRouter(session)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Mount("/", handler)

	// the browser UI is served from a different origin during development
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := ":" + envOr("PORT", "8080")
	srv := &http.Server{
		Addr:         addr,
		Handler:      c.Handler(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("starting offer-configurator on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %s\n", err)
	}

	<-idleConnsClosed
	log.Println("server stopped")
}

func envOr(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
