package handler

import (
	"log"
	"net/http"

	"homefeed-server/internal/websocket"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	manager  *websocket.Manager
	upgrader ws.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager, readBufferSize, writeBufferSize int) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		upgrader: ws.Upgrader{
			ReadBufferSize:  readBufferSize,
			WriteBufferSize: writeBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection upgrades the request and subscribes the tab to feed events.
func (h *WebSocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WebSocket] upgrade failed: %v", err)
		return
	}

	client := websocket.NewClient(uuid.New().String(), conn, h.manager)
	h.manager.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
