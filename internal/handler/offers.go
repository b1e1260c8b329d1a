package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flysas/internal/cache"
	"github.com/dharmasatrya/flysas/internal/models"
	"github.com/dharmasatrya/flysas/internal/ratelimit"
	"github.com/dharmasatrya/flysas/pkg/logger"
	"github.com/dharmasatrya/flysas/pkg/metrics"
)

type OfferLoader interface {
	Load(ctx context.Context, criteria models.SearchCriteria) (*models.FlightOffersResult, error)
}

type OffersHandler struct {
	loader  OfferLoader
	cache   cache.Cache
	logger  logger.Logger
	metrics *metrics.Metrics
}

func NewOffersHandler(loader OfferLoader, c cache.Cache, l logger.Logger, m *metrics.Metrics) *OffersHandler {
	return &OffersHandler{
		loader:  loader,
		cache:   c,
		logger:  l,
		metrics: m,
	}
}

func (h *OffersHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var criteria models.SearchCriteria
	if err := c.Bind(&criteria); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse query: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := criteria.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	criteria = criteria.WithDefaults()

	if cached, found := h.cache.Get(ctx, criteria); found {
		return c.JSON(http.StatusOK, buildResponse(criteria, cached, startTime, true))
	}

	result, err := h.loader.Load(ctx, criteria)
	if err != nil {
		h.metrics.CountError("load")
		h.logger.Error("offers load failed", "from", criteria.Origin, "to", criteria.Destination, "error", err)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "upstream_error",
			Message: "Failed to load offers: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	if err := h.cache.Set(ctx, criteria, result); err != nil {
		h.logger.Warn("offers cache write failed", "error", err)
	}

	return c.JSON(http.StatusOK, buildResponse(criteria, result, startTime, false))
}

func buildResponse(criteria models.SearchCriteria, result *models.FlightOffersResult, startTime time.Time, cacheHit bool) models.OffersResponse {
	return models.OffersResponse{
		SearchCriteria: criteria,
		Metadata: models.SearchMetadata{
			TotalFields:  result.Len(),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
		Offers: result,
	}
}

// RateLimit rejects callers that exceed their token bucket with 429.
func RateLimit(limiter *ratelimit.ClientLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limited",
					Message: "Too many requests",
					Code:    http.StatusTooManyRequests,
				})
			}
			return next(c)
		}
	}
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
