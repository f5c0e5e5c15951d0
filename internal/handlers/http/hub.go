package http

import (
	"encoding/json"
	nethttp "net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/decred/slog"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 8
)

// frameData is one frame in both wire formats
type frameData struct {
	text   []byte
	binary []byte
}

func encodeFrame(frame any) (*frameData, error) {
	text, err := json.Marshal(frame)
	if err != nil {
		return nil, err
	}
	binary, err := msgpack.Marshal(frame)
	if err != nil {
		return nil, err
	}
	return &frameData{text: text, binary: binary}, nil
}

// feedClient is one websocket subscriber
type feedClient struct {
	conn   *websocket.Conn
	send   chan *frameData
	binary bool
	once   sync.Once
}

func (c *feedClient) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// hub fans leaderboard frames out to websocket clients
type hub struct {
	log          slog.Logger
	pingInterval time.Duration
	upgrader     websocket.Upgrader

	mu      sync.Mutex
	clients map[*feedClient]struct{}
}

func newHub(log slog.Logger, pingInterval time.Duration) *hub {
	return &hub{
		log:          log,
		pingInterval: pingInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *nethttp.Request) bool {
				return true
			},
		},
		clients: make(map[*feedClient]struct{}),
	}
}

// Broadcast pushes the board to every client. Clients that cannot keep up are dropped.
func (h *hub) Broadcast(board *models.Leaderboard) {
	data, err := encodeFrame(newLeaderboardFrame(board))
	if err != nil {
		h.log.Errorf("Failed to encode leaderboard frame: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.log.Warnf("Dropping slow feed client %s", c.conn.RemoteAddr())
			delete(h.clients, c)
			c.close()
		}
	}
}

// Count returns the number of connected clients
func (h *hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// serve upgrades the request and streams frames, starting with initial
func (h *hub) serve(w nethttp.ResponseWriter, r *nethttp.Request, initial *models.Leaderboard) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("Upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	c := &feedClient{
		conn:   conn,
		send:   make(chan *frameData, sendBufferSize),
		binary: r.URL.Query().Get("format") == "msgpack",
	}

	if data, err := encodeFrame(newLeaderboardFrame(initial)); err == nil {
		c.send <- data
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	h.readPump(c)
}

func (h *hub) remove(c *feedClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
	h.mu.Unlock()
}

// readPump discards client messages and notices disconnects
func (h *hub) readPump(c *feedClient) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump owns all writes to the connection
func (h *hub) writePump(c *feedClient) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			var err error
			if c.binary {
				err = c.conn.WriteMessage(websocket.BinaryMessage, data.binary)
			} else {
				err = c.conn.WriteMessage(websocket.TextMessage, data.text)
			}
			if err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// closeAll disconnects every client
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}
