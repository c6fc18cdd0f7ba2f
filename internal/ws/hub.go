package ws

import (
	"sync"

	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// Hub mantém as sessões WebSocket conectadas e distribui para todas elas
// as notificações de mudança. Cada sessão recarrega a lista inteira ao
// receber qualquer mensagem, então o hub não precisa rotear nada.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan any
	mu         sync.RWMutex
	log        *logger.Logger
}

// NewHub cria um novo hub de sessões
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan any, 16),
		log:        log,
	}
}

// Run processa registros, saídas e broadcasts até o canal ser fechado.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Debugw("WebSocket session registered", "total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				close(client.send)
				delete(h.clients, client)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Debugw("WebSocket session unregistered", "total", total)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Broadcast envia a mensagem para todas as sessões conectadas.
func (h *Hub) Broadcast(message any) {
	h.broadcast <- message
}

// broadcastMessage entrega a mensagem, derrubando sessões com fila cheia
func (h *Hub) broadcastMessage(message any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			// Fila cheia: a sessão está lenta demais, desconecta
			go func(c *Client) {
				h.unregister <- c
			}(client)
		}
	}
}
