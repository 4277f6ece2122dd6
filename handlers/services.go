package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	serviceRepo "promaallem/database/repository/service"
	"promaallem/models"
	"promaallem/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	servicesCacheKey = "catalog:services"
	servicesCacheTTL = 10 * time.Minute
)

// ServicesHandler exposes the service catalog, fronted by a Redis read
// cache. Cache failures degrade to a direct repository read.
type ServicesHandler struct {
	Repo  serviceRepo.ServiceRepository
	Cache *redis.Client
}

// NewServicesHandler creates a ServicesHandler. Cache may be nil.
func NewServicesHandler(repo serviceRepo.ServiceRepository, cache *redis.Client) *ServicesHandler {
	return &ServicesHandler{Repo: repo, Cache: cache}
}

// ListServicesHandler handles GET /api/services.
func (h *ServicesHandler) ListServicesHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.fromCache(ctx); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	services, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	if services == nil {
		services = []models.Service{}
	}

	h.toCache(ctx, services)
	c.JSON(http.StatusOK, services)
}

func (h *ServicesHandler) fromCache(ctx context.Context) ([]models.Service, bool) {
	if h.Cache == nil {
		return nil, false
	}
	data, err := h.Cache.Get(ctx, servicesCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Service catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var services []models.Service
	if err := json.Unmarshal([]byte(data), &services); err != nil {
		return nil, false
	}
	return services, true
}

func (h *ServicesHandler) toCache(ctx context.Context, services []models.Service) {
	if h.Cache == nil {
		return
	}
	data, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := h.Cache.Set(ctx, servicesCacheKey, data, servicesCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Service catalog cache write failed", zap.Error(err))
	}
}
