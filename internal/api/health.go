package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Himanshur25/recipe-master/internal/database"
)

// HealthHandler reports liveness of the store dependencies.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "ok"}

	if err := database.HealthCheck(c.Request.Context(), h.db); err != nil {
		checks["database"] = "unavailable"
		status = http.StatusServiceUnavailable
	}
	if h.redis == nil {
		checks["redis"] = "disabled"
	} else if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
		checks["redis"] = "unavailable"
	}

	c.JSON(status, checks)
}
