package errors

import "net/http"

const (
	CodeConfigurationError = "CONFIGURATION_ERROR"
	CodeInvalidCoordinates = "INVALID_COORDINATES"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUpstreamError      = "UPSTREAM_ERROR"

	// maxBodyBytes - предел тела upstream-ответа в деталях ошибки
	maxBodyBytes = 1000
)

var (
	ErrMissingAPIKey = New(
		CodeConfigurationError,
		"GOOGLE_MAPS_API_KEY missing",
		http.StatusInternalServerError,
	)

	ErrInvalidCoordinates = New(
		CodeInvalidCoordinates,
		"lat and lng are required numbers",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
