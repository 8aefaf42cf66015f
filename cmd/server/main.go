package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"care-info-api/internal/config"
	"care-info-api/internal/handler"
	"care-info-api/internal/logging"
	"care-info-api/internal/middleware"
	"care-info-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").WithError(err).Fatal("config")
	}
	log := logging.New(cfg.LogLevel)

	// database
	pool, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	defer pool.Close()
	log.Info("connected to postgres")

	st := store.New(pool)

	// run migrations
	if err := st.Migrate(context.Background(), cfg.MigrationsPath); err != nil {
		log.WithError(err).WithField("path", cfg.MigrationsPath).Warn("migration skipped")
	} else {
		log.Info("migration applied")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := handler.New(st, cfg.JWTSecret, cfg.TokenTTL, log)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h.Routes(middleware.NewMetrics(reg), cfg.CORSOrigins),
	}
	go func() {
		log.WithField("port", cfg.Port).Info("http listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("shutdown")
	}
}
