package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// UpstreamErrorResponse - форма ответа 502: ошибка, статус и тело провайдера
type UpstreamErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func SendError(c *fiber.Ctx, err error) error {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		// Unknown error - return 500
		return c.Status(500).JSON(ErrorResponse{
			Error: errors.ErrInternalServer,
		})
	}

	if appErr.Code == errors.CodeUpstreamError {
		return c.Status(appErr.StatusCode).JSON(UpstreamErrorResponse{
			Error:  appErr.Message,
			Status: appErr.UpstreamStatus(),
			Body:   appErr.UpstreamBody(),
		})
	}

	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: appErr,
	})
}
