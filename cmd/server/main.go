package main

import (
	"log"

	"github.com/gin-gonic/gin"

	httpapi "live-chess/internal/api/http"
	"live-chess/internal/api/ws"
	"live-chess/internal/config"
	"live-chess/internal/game"
	"live-chess/internal/session"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	engine := game.NewEngine()
	coord := session.New(engine)
	hub := ws.NewHub(coord, cfg.AllowedOrigins)
	coord.SetEmitter(hub)

	r := httpapi.NewRouter(hub)

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
