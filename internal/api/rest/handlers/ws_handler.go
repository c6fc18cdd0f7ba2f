package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mvcampos/painel-iptv/internal/ws"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// WSHandler promove a conexão a WebSocket e a registra no hub de
// notificações de mudança.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
	log      *logger.Logger
}

// NewWSHandler cria o handler de conexões WebSocket
func NewWSHandler(hub *ws.Hub, log *logger.Logger) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// O painel é servido de origens variadas em desenvolvimento
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Serve promove a requisição a WebSocket. A autenticação já aconteceu no
// middleware, via parâmetro de query "token".
func (h *WSHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.ServeConn(conn)
}
