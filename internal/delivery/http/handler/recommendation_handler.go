package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/metrics"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/pkg/validator"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// defaultRadiusKm применяется при отсутствующем или нечитаемом radius_km
const defaultRadiusKm = 3.0

// RecommendationHandler - обработчик запросов рекомендаций
type RecommendationHandler struct {
	recommendationUC *usecase.RecommendationUseCase
	placesCfg        *config.PlacesConfig
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewRecommendationHandler - создание нового RecommendationHandler
func NewRecommendationHandler(
	recommendationUC *usecase.RecommendationUseCase,
	placesCfg *config.PlacesConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUC: recommendationUC,
		placesCfg:        placesCfg,
		metrics:          m,
		logger:           logger,
	}
}

// GetRecommendations - рекомендации мест вокруг точки по списку интересов.
// Ответ - JSON-массив мест, упорядоченный по убыванию score.
func (h *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	if h.placesCfg.APIKey == "" {
		h.metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return utils.SendError(c, errors.ErrMissingAPIKey)
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		h.metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	radiusKm, err := strconv.ParseFloat(c.Query("radius_km", ""), 64)
	if err != nil {
		radiusKm = defaultRadiusKm
	}

	req := dto.RecommendationsRequest{
		Lat:          lat,
		Lng:          lng,
		Interests:    domain.ParseInterests(c.Query("interests")),
		RadiusMeters: radiusKm * 1000,
	}

	if appErr := validator.ValidateRequest(&req); appErr != nil {
		h.metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return utils.SendError(c, appErr)
	}

	places, err := h.recommendationUC.Recommend(c.Context(), req)
	if err != nil {
		h.metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return utils.SendError(c, err)
	}

	h.metrics.RecommendationRequests.WithLabelValues("ok").Inc()
	return c.JSON(places)
}
