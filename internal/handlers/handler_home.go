package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HomeHandler serves the root and health endpoints.
type HomeHandler struct {
	pool *pgxpool.Pool
}

func NewHomeHandler(pool *pgxpool.Pool) *HomeHandler {
	return &HomeHandler{pool: pool}
}

// Home godoc
// @Summary      API root
// @Tags         meta
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func (h *HomeHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "portfolio-backend", "status": "ok"})
}

// Health godoc
// @Summary      Health check
// @Description  Reports degraded when the database is unreachable.
// @Tags         meta
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /health [get]
func (h *HomeHandler) Health(c *gin.Context) {
	if err := h.pool.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
