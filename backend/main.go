package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quora-backend/backend/global"
	"quora-backend/backend/initialize"
	"quora-backend/backend/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build failed")
	}

	srv := server.New(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router)
	go func() {
		global.Logger.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			global.Logger.Fatal().Err(err).Msg("serve failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	global.Logger.Info().Msg("shutting down")
	if err := server.Shutdown(srv, 10*time.Second); err != nil {
		global.Logger.Error().Err(err).Msg("shutdown")
	}
}
