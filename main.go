package main

import (
	"flag"
	"taskboard/global"
	"taskboard/initialize"
	"taskboard/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	global.Logger.Info().
		Str("host", app.Cfg.HTTP.Host).
		Int("port", app.Cfg.HTTP.Port).
		Msg("listening")
	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server stopped")
	}
}
