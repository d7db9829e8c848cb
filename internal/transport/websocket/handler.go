package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/showai/connect4-engine/internal/domain"
	"github.com/showai/connect4-engine/internal/service/move"
	"github.com/showai/connect4-engine/pkg/auth"
	"github.com/showai/connect4-engine/pkg/httputil"
	"github.com/showai/connect4-engine/pkg/useragent"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// MoveComputer is the part of move.Service the socket needs.
type MoveComputer interface {
	ComputeMove(ctx context.Context, req move.MoveRequest) (*move.MoveResponse, error)
}

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	Moves       MoveComputer
	JWTSecret   string
	Upgrader    websocket.Upgrader
}

// NewHandler creates a WebSocket handler. allowedOrigins empty accepts any origin.
func NewHandler(cm *ConnectionManager, moves MoveComputer, jwtSecret string, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &Handler{
		ConnManager: cm,
		Moves:       moves,
		JWTSecret:   jwtSecret,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowed) == 0 || allowed[origin]
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the gin entry point for /ws
func (h *Handler) HandleWebSocket(c *gin.Context) {
	h.ServeHTTP(c.Writer, c.Request)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := useragent.ClientLabel(r)
	if h.JWTSecret != "" {
		token, err := httputil.GetTokenFromRequest(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		claims, err := auth.ValidateAccessToken(h.JWTSecret, token)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		name = claims.Client
	}

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := NewClient(conn, name)
	h.ConnManager.Add(client)
	log.Printf("[WS] Connection opened for %s", name)

	h.handleConnection(client)
}

// handleConnection reads requests until the socket closes. Each request is
// answered from its own goroutine so a long search never blocks reads.
func (h *Handler) handleConnection(client *Client) {
	conn := client.conn
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	var pending sync.WaitGroup

	defer func() {
		cancel()
		pending.Wait()
		h.ConnManager.Remove(client)
		log.Printf("[WS] Connection closed for %s", client.name)
	}()

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := client.Ping(); err != nil {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			client.Send(ServerMessage{Type: MsgError, Message: "Invalid JSON"})
			continue
		}

		switch msg.Type {
		case MsgFindMove:
			pending.Add(1)
			go func(msg ClientMessage) {
				defer pending.Done()
				h.answer(ctx, client, msg)
			}(msg)
		default:
			client.Send(ServerMessage{Type: MsgError, ID: msg.ID, Message: "Unknown message type"})
		}
	}
}

func (h *Handler) answer(ctx context.Context, client *Client, msg ClientMessage) {
	resp, err := h.Moves.ComputeMove(ctx, move.MoveRequest{
		Board:  msg.Board,
		Rows:   msg.Rows,
		Cols:   msg.Cols,
		Client: client.name,
	})
	if err != nil {
		text := "Failed to compute move"
		if errors.Is(err, domain.ErrInvalidBoard) {
			text = err.Error()
		} else if !errors.Is(err, context.Canceled) {
			log.Printf("[WS] Move request %s failed: %v", msg.ID, err)
		}
		client.Send(ServerMessage{Type: MsgError, ID: msg.ID, Message: text})
		return
	}

	client.Send(ServerMessage{
		Type:      MsgMove,
		ID:        msg.ID,
		RequestID: resp.RequestID,
		Column:    resp.Column,
		Winner:    resp.Winner,
		Cached:    resp.Cached,
	})
}
