package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/usecase"
	"go.uber.org/zap"
)

// PlaceHandler - обработчик запросов детальной информации о месте
type PlaceHandler struct {
	placeDetailUC *usecase.PlaceDetailUseCase
	placesCfg     *config.PlacesConfig
	logger        *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(
	placeDetailUC *usecase.PlaceDetailUseCase,
	placesCfg *config.PlacesConfig,
	logger *zap.Logger,
) *PlaceHandler {
	return &PlaceHandler{
		placeDetailUC: placeDetailUC,
		placesCfg:     placesCfg,
		logger:        logger,
	}
}

// GetPlace - детальная запись места по идентификатору
func (h *PlaceHandler) GetPlace(c *fiber.Ctx) error {
	if h.placesCfg.APIKey == "" {
		return utils.SendError(c, errors.ErrMissingAPIKey)
	}

	placeID := c.Params("place_id")

	detail, err := h.placeDetailUC.GetPlace(c.Context(), placeID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(detail)
}
