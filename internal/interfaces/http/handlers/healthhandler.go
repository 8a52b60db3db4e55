// Package handlers contains the Gin HTTP handlers. Handlers bind and
// validate requests, call use cases, and translate results and errors into
// the JSON response envelope.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orderline-io/orderline/internal/shared/utils"
)

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
	}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis,omitempty"`
}

// Check reports liveness of the process and its dependencies. A degraded
// dependency yields 503 so load balancers can rotate the instance out.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := healthStatus{Status: "ok", Database: "ok"}
	healthy := true

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status.Database = "unreachable"
		healthy = false
	}

	if h.redisClient != nil {
		status.Redis = "ok"
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			status.Redis = "unreachable"
			healthy = false
		}
	}

	if !healthy {
		status.Status = "degraded"
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{Success: false, Data: status})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}
