package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	logger2 "github.com/WeGoWinPrikitiw/pico-sub001/pkg/logger"
)

func NewRouter(handler Handler, logger *slog.Logger, cfg *Config) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.Recoverer)
	mux.Use(chiMiddleware.Timeout(cfg.Timeout))

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "authorization"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge),
	}))

	wrappedLogger := &logger2.Logger{Logger: logger}
	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  wrappedLogger,
		NoColor: true,
	}))

	routeURL := fmt.Sprintf("/api/%s/marketplace", cfg.APIVersion)
	mux.Route(routeURL, func(r chi.Router) {
		r.Get("/nfts", handler.ListNFTs)
		r.Get("/nfts/{id}", handler.GetNFT)
		r.Get("/categories", handler.Categories)
		r.Get("/errors", handler.RecentErrors)
		r.Get("/health", handler.Health)
	})

	return mux
}
