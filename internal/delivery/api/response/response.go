// Package response renders the JSON envelopes returned by every endpoint.
package response

import (
	"net/http"

	deliverycontext "nutriplan/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Error codes produced at the transport layer, before a usecase is reached.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeHTTPError        = "HTTP_ERROR"
)

// SuccessResponse wraps a payload as {"data": ..., "meta": ...}.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failure as {"error": ..., "meta": ...}.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo is the machine-readable half of an error response.
type ErrorInfo struct {
	Code    string `json:"code"` // e.g. "MEAL_PLAN_NOT_FOUND"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo carries the request id echoed in the X-Request-Id header.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data inside the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes the error envelope. Details are dropped for server and
// authentication failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// InvalidInput reports a body or path parameter that could not be decoded.
func InvalidInput(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidInput, message, nil)
}

// ValidationFailed reports decoded input that broke a field rule, keyed by JSON field name.
func ValidationFailed(c echo.Context, message string, fields map[string]string) error {
	return Error(c, http.StatusBadRequest, CodeValidationFailed, message, fields)
}

// InternalServerError hides the cause behind a generic message.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternalError, "Internal server error, please try again later", nil)
}

// PNG writes an image that must not be cached, since it encodes a per-user link.
func PNG(c echo.Context, data []byte) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", data)
}
