package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// NewUpstreamError оборачивает неуспешный ответ Places API.
// Тело upstream-ответа в деталях ограничено maxBodyBytes.
func NewUpstreamError(message string, status int, body string) *AppError {
	if len(body) > maxBodyBytes {
		body = body[:maxBodyBytes]
	}
	return New(CodeUpstreamError, message, 502).WithDetails(map[string]interface{}{
		"status": status,
		"body":   body,
	})
}

// UpstreamStatus возвращает статус код провайдера из деталей ошибки
func (e *AppError) UpstreamStatus() int {
	status, _ := e.Details["status"].(int)
	return status
}

// UpstreamBody возвращает тело ответа провайдера из деталей ошибки
func (e *AppError) UpstreamBody() string {
	body, _ := e.Details["body"].(string)
	return body
}
