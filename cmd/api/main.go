package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskdesk/internal/config"
	"taskdesk/internal/router"
	"taskdesk/internal/service"
	"taskdesk/internal/store"
	"taskdesk/pkg/logger"
)

func main() {
	// config + logger
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// storage
	st, err := store.Open(context.Background(), cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("store open failed")
	}
	defer st.Close()

	// seed the first superuser on an empty install
	users := service.NewUserService(st, l)
	seeded, err := users.EnsureSuperuser(context.Background(), cfg.BootstrapUsername, cfg.BootstrapEmail, cfg.BootstrapPassword)
	if err != nil {
		l.Fatal().Err(err).Msg("superuser bootstrap failed")
	}
	if seeded {
		l.Info().Str("username", cfg.BootstrapUsername).Msg("bootstrap superuser created")
	}

	// http
	r := router.New(l, st, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
