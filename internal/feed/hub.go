// Package feed mirrors the simulation to websocket clients and collects
// their commands. Events and snapshots go out as JSON {type, data};
// clients may send {"type":"place","tile":N} and {"type":"restart"}.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"go-orc-defense/internal/app"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/logging"
	"go-orc-defense/internal/types"
)

var feedLog = logging.New("feed")

// ErrBadCommand is returned by ParseCommand for messages it cannot map.
var ErrBadCommand = errors.New("bad command")

const (
	clientBuffer    = 256
	broadcastBuffer = 1024
	commandBuffer   = 64
)

// Message is one frame sent to clients.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type inbound struct {
	Type string         `json:"type"`
	Tile types.EntityID `json:"tile"`
}

// Client is one websocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans simulation events out to every client.
// OnEvent and Publish never block the simulation: frames are dropped when buffers are full.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	commands   chan app.Command
	done       chan struct{}
	upgrader   websocket.Upgrader

	mu    sync.Mutex
	count int
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, broadcastBuffer),
		commands:   make(chan app.Command, commandBuffer),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.setCount(len(h.clients))
			feedLog.Info("client connected", "addr", c.conn.RemoteAddr())

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				feedLog.Info("client disconnected", "addr", c.conn.RemoteAddr())
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					feedLog.Warn("slow client dropped", "addr", c.conn.RemoteAddr())
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
	h.setCount(len(h.clients))
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// Commands delivers client commands to the host.
func (h *Hub) Commands() <-chan app.Command {
	return h.commands
}

// OnEvent forwards a simulation event.
func (h *Hub) OnEvent(e event.Event) {
	h.send(Message{Type: string(e.Type), Data: e.Data})
}

// Publish forwards a periodic snapshot.
func (h *Hub) Publish(s app.Snapshot) {
	h.send(Message{Type: "snapshot", Data: s})
}

func (h *Hub) send(m Message) {
	data, err := json.Marshal(m)
	if err != nil {
		feedLog.Error("cannot encode message", "type", m.Type, "err", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		feedLog.Debug("broadcast buffer full, message dropped", "type", m.Type)
	}
}

// ParseCommand maps a client message to a simulation command.
func ParseCommand(data []byte) (app.Command, error) {
	var in inbound
	if err := json.Unmarshal(data, &in); err != nil {
		return app.Command{}, fmt.Errorf("%w: %v", ErrBadCommand, err)
	}
	switch app.CommandKind(in.Type) {
	case app.CommandPlace:
		if in.Tile == types.NoEntity {
			return app.Command{}, fmt.Errorf("%w: place without tile", ErrBadCommand)
		}
		return app.Command{Kind: app.CommandPlace, Tile: in.Tile}, nil
	case app.CommandRestart:
		return app.Command{Kind: app.CommandRestart}, nil
	default:
		return app.Command{}, fmt.Errorf("%w: unknown type %q", ErrBadCommand, in.Type)
	}
}

// ServeHTTP upgrades the connection and attaches a client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		feedLog.Warn("upgrade failed", "err", err)
		return
	}

	c := &Client{hub: h, conn: conn, send: make(chan []byte, clientBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		cmd, err := ParseCommand(message)
		if err != nil {
			feedLog.Warn("ignored message", "err", err)
			continue
		}
		select {
		case c.hub.commands <- cmd:
		default:
			feedLog.Warn("command queue full", "kind", cmd.Kind)
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
