package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showai/connect4-engine/internal/domain"
	"github.com/showai/connect4-engine/internal/service/move"
	"github.com/showai/connect4-engine/internal/service/worker"
	"github.com/showai/connect4-engine/internal/transport/http/middleware"
	"github.com/showai/connect4-engine/pkg/uid"
	"github.com/showai/connect4-engine/pkg/useragent"
)

// RequestIDHeader lets callers correlate a move with their own logs.
const RequestIDHeader = "X-Request-ID"

// MoveService is the part of move.Service the handlers need.
type MoveService interface {
	ComputeMove(ctx context.Context, req move.MoveRequest) (*move.MoveResponse, error)
	Stats(ctx context.Context) (*domain.MoveStats, error)
}

type MoveHandler struct {
	Service MoveService
}

func NewMoveHandler(svc MoveService) *MoveHandler {
	return &MoveHandler{Service: svc}
}

type moveRequestBody struct {
	Board []int `json:"board" binding:"required"`
	Rows  int   `json:"rows"`
	Cols  int   `json:"cols"`
}

// FindMove answers POST /api/connect4/move
func (h *MoveHandler) FindMove(c *gin.Context) {
	var body moveRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	client := useragent.ClientLabel(c.Request)
	if name := c.GetString(middleware.ClientKey); name != "" {
		client = name
	}

	var requestID string
	if id := c.GetHeader(RequestIDHeader); uid.IsRequestID(id) {
		requestID = id
	}

	resp, err := h.Service.ComputeMove(c.Request.Context(), move.MoveRequest{
		Board:     body.Board,
		Rows:      body.Rows,
		Cols:      body.Cols,
		RequestID: requestID,
		Client:    client,
	})
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[ENGINE] Move request failed: %v", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.Header(RequestIDHeader, resp.RequestID)
	c.JSON(http.StatusOK, resp)
}

// GetStats answers GET /api/connect4/stats
func (h *MoveHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		if errors.Is(err, move.ErrStatsUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Move log not available"})
			return
		}
		log.Printf("[DB] Failed to read stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// errorStatus maps service errors to an HTTP status and client message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidBoard):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, worker.ErrQueueFull), errors.Is(err, worker.ErrPoolStopped):
		return http.StatusServiceUnavailable, "Engine busy, try again"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Move computation timed out"
	default:
		return http.StatusInternalServerError, "Failed to compute move"
	}
}

// RegisterRoutes mounts the engine API on r.
func RegisterRoutes(r gin.IRouter, h *MoveHandler, authMW gin.HandlerFunc) {
	api := r.Group("/api/connect4")
	api.Use(authMW)
	{
		api.POST("/move", h.FindMove)
		api.GET("/stats", h.GetStats)
	}
}
