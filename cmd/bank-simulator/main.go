package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/jonanatree/payment-gateway/banksim"
	"github.com/jonanatree/payment-gateway/internal/middleware"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = "localhost:8080"
	}

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))

	banksim.NewAPI(logger).AppendRoutes(router)

	logger.Info("bank simulator started", slog.String("addr", addr))

	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("http server", "err", err)
		os.Exit(1)
	}
}
