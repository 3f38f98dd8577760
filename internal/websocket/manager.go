package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Manager fans feed events out to every connected client. Register,
// Unregister and Broadcast are serialized through Run.
type Manager struct {
	clients        map[string]*Client
	clientsMutex   sync.RWMutex
	register       chan *Client
	unregisterCh   chan *Client
	broadcast      chan []byte
	done           chan struct{}
	maxClients     int
	maxMessageSize int64
	writeWait      time.Duration
	pongWait       time.Duration
	pingPeriod     time.Duration
	debug          bool
}

func NewManager(maxClients int, maxMessageSize int64, writeWait, pongWait, pingPeriod time.Duration) *Manager {
	return &Manager{
		clients:        make(map[string]*Client),
		register:       make(chan *Client),
		unregisterCh:   make(chan *Client),
		broadcast:      make(chan []byte, 64),
		done:           make(chan struct{}),
		maxClients:     maxClients,
		maxMessageSize: maxMessageSize,
		writeWait:      writeWait,
		pongWait:       pongWait,
		pingPeriod:     pingPeriod,
	}
}

// SetDebug enables per-connection log lines. Call it before Run.
func (m *Manager) SetDebug(enabled bool) {
	m.debug = enabled
}

func (m *Manager) debugf(format string, args ...interface{}) {
	if m.debug {
		log.Printf("[WebSocket] "+format, args...)
	}
}

func (m *Manager) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			close(m.done)
			return

		case client := <-m.register:
			m.registerClient(client)

		case client := <-m.unregisterCh:
			m.unregisterClient(client)

		case message := <-m.broadcast:
			m.deliver(message)
		}
	}
}

// Register hands a client to the manager. A full manager closes the
// client's Send channel instead of adding it.
func (m *Manager) Register(client *Client) {
	select {
	case m.register <- client:
	case <-m.done:
		close(client.Send)
	}
}

func (m *Manager) unregister(client *Client) {
	select {
	case m.unregisterCh <- client:
	case <-m.done:
	}
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if len(m.clients) >= m.maxClients {
		log.Printf("[WebSocket] max clients reached, rejecting %s", client.ID)
		close(client.Send)
		return
	}

	m.clients[client.ID] = client
	m.debugf("client registered: %s", client.ID)
}

func (m *Manager) unregisterClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		close(client.Send)
		m.debugf("client unregistered: %s", client.ID)
	}
}

func (m *Manager) closeAll() {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	for id, client := range m.clients {
		delete(m.clients, id)
		close(client.Send)
	}
}

func (m *Manager) deliver(message []byte) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	for id, client := range m.clients {
		select {
		case client.Send <- message:
		default:
			log.Printf("[WebSocket] client %s send buffer full, dropping connection", id)
			delete(m.clients, id)
			close(client.Send)
		}
	}
}

// Publish queues an event for every connected client. It never blocks the
// caller; events are dropped when the queue is full.
func (m *Manager) Publish(msgType MessageType, payload interface{}) {
	message, err := NewMessage(msgType, payload)
	if err != nil {
		log.Printf("[WebSocket] error building %s message: %v", msgType, err)
		return
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Printf("[WebSocket] error encoding %s message: %v", msgType, err)
		return
	}

	select {
	case m.broadcast <- messageBytes:
	default:
		log.Printf("[WebSocket] broadcast queue full, dropping %s", msgType)
	}
}

func (m *Manager) ClientCount() int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()
	return len(m.clients)
}
