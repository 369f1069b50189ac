package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup
// response. A client that missed more is told to do a full REST reload.
const catchupLimit = 200

// ConnectionManager bridges the in-process bus to WebSocket clients.
type ConnectionManager struct {
	bus   *Bus
	store EventStore // may be nil (catchup disabled)

	mu          sync.RWMutex
	connections map[string]*Connection

	writeTimeout time.Duration
}

// Connection is a single WebSocket client.
//
// subscriptions is accessed without a lock: all reads and writes happen on
// the goroutine that owns the connection (HandleConnection's read loop and
// its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]func() // topic → bus unsubscribe
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a connection manager over the bus.
func NewConnectionManager(bus *Bus, store EventStore, writeTimeout time.Duration) *ConnectionManager {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &ConnectionManager{
		bus:          bus,
		store:        store,
		connections:  make(map[string]*Connection),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection owns the lifecycle of one WebSocket connection. Called
// by the HTTP handler after upgrade; blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            uuid.New().String(),
		Conn:          conn,
		subscriptions: make(map[string]func()),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.register(c)
	defer m.unregister(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.ID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.ID, "error", err)
			continue
		}
		m.handleClientMessage(ctx, c, &msg)
	}
}

// ActiveConnections returns the count of open WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Topic == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "topic is required for subscribe"})
			return
		}
		m.subscribe(c, msg.Topic)
		m.sendJSON(c, map[string]string{"type": "subscription.confirmed", "topic": msg.Topic})
		// Auto catch-up so late subscribers see prior durable events.
		m.handleCatchup(ctx, c, msg.Topic, 0)

	case "unsubscribe":
		if msg.Topic == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "topic is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Topic)

	case "catchup":
		if msg.Topic == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "topic is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Topic, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe wires a bus subscription to the connection. The forwarding
// goroutine exits when the subscription is cancelled or the connection
// context ends.
func (m *ConnectionManager) subscribe(c *Connection, topic string) {
	if _, exists := c.subscriptions[topic]; exists {
		return
	}
	ch, cancel := m.bus.Subscribe(topic)
	c.subscriptions[topic] = cancel

	go func() {
		for {
			select {
			case payload, ok := <-ch:
				if !ok {
					return
				}
				if err := m.sendRaw(c, payload); err != nil {
					slog.Warn("Failed to send to WebSocket client",
						"connection_id", c.ID, "topic", topic, "error", err)
					c.cancel()
					return
				}
			case <-c.ctx.Done():
				return
			}
		}
	}()
}

func (m *ConnectionManager) unsubscribe(c *Connection, topic string) {
	if cancel, ok := c.subscriptions[topic]; ok {
		cancel()
		delete(c.subscriptions, topic)
	}
}

// handleCatchup replays durable events after sinceID to the client.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, topic string, sinceID int64) {
	if m.store == nil {
		return
	}
	stored, err := m.store.CatchupEvents(ctx, topic, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "topic", topic, "error", err)
		return
	}
	hasMore := len(stored) > catchupLimit
	if hasMore {
		stored = stored[:catchupLimit]
	}
	for _, evt := range stored {
		enriched, err := injectEventID(evt.Payload, evt.ID)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, enriched); err != nil {
			slog.Warn("Failed to send catchup event", "connection_id", c.ID, "error", err)
			return
		}
	}
	if hasMore {
		m.sendJSON(c, map[string]any{"type": "catchup.overflow", "topic": topic, "has_more": true})
	}
}

func (m *ConnectionManager) register(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregister(c *Connection) {
	for topic := range c.subscriptions {
		m.unsubscribe(c, topic)
	}
	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
