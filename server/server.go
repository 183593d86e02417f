// Package server exposes a uuidgen.Service over HTTP.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/viant/uuidgen"
)

// Handler serves generation requests.
type Handler struct {
	service  *uuidgen.Service
	maxBatch int
}

// GenerateResponse is the body of GET /v1/uuid.
type GenerateResponse struct {
	Source string   `json:"source"`
	UUIDs  []string `json:"uuids"`
}

// Generate handles GET /v1/uuid?count=N
func (h *Handler) Generate(c *gin.Context) {
	count := 1
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > h.maxBatch {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be an integer in [1, " + strconv.Itoa(h.maxBatch) + "]"})
			return
		}
		count = n
	}
	ids, err := h.service.GenerateN(c.Request.Context(), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := GenerateResponse{Source: h.service.Kind(), UUIDs: make([]string, len(ids))}
	for i, id := range ids {
		resp.UUIDs[i] = id.String()
	}
	c.JSON(http.StatusOK, resp)
}

// Setup registers routes on engine.
func (h *Handler) Setup(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1 := engine.Group("/v1")
	{
		v1.GET("/uuid", h.Generate)
	}
}

// New creates a handler; the batch limit comes from the service config.
func New(service *uuidgen.Service) *Handler {
	maxBatch := service.Config().Server.MaxBatch
	if maxBatch <= 0 {
		maxBatch = uuidgen.DefaultConfig().Server.MaxBatch
	}
	return &Handler{service: service, maxBatch: maxBatch}
}
