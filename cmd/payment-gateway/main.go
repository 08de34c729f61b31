package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonanatree/payment-gateway/gateway"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	config := gateway.DefaultConfig()
	config.HTTPAddr = getenv("HTTP_ADDR", config.HTTPAddr)
	config.BankURL = getenv("BANK_URL", config.BankURL)
	if v := os.Getenv("BANK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.BankTimeout = d
		} else {
			logger.Info("invalid BANK_TIMEOUT; using default", slog.String("value", v))
		}
	}

	app := gateway.NewApp(logger, config)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	app.Shutdown()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
