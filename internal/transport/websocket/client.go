package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Client wraps one socket. Writes are serialized because conn.WriteJSON
// is not safe for concurrent use.
type Client struct {
	conn    *websocket.Conn
	name    string
	writeMu sync.Mutex
}

func NewClient(conn *websocket.Conn, name string) *Client {
	return &Client{conn: conn, name: name}
}

func (c *Client) Send(message ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}

func (c *Client) Ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// ConnectionManager tracks open sockets so shutdown can close them.
type ConnectionManager struct {
	clients map[*Client]struct{}
	mu      sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{clients: make(map[*Client]struct{})}
}

func (cm *ConnectionManager) Add(c *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.clients[c] = struct{}{}
}

func (cm *ConnectionManager) Remove(c *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if _, ok := cm.clients[c]; ok {
		c.conn.Close()
		delete(cm.clients, c)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients)
}

// CloseAll sends a close frame to every client and drops them.
func (cm *ConnectionManager) CloseAll(reason string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	for c := range cm.clients {
		c.writeMu.Lock()
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, reason),
			time.Now().Add(time.Second))
		c.writeMu.Unlock()
		c.conn.Close()
		delete(cm.clients, c)
	}
}
