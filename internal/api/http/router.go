package http

import (
	"github.com/gin-gonic/gin"

	"live-chess/internal/api/ws"
)

func NewRouter(hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	r.GET("/", IndexHandler())
	r.GET("/ws", hub.HandleWS)

	return r
}
