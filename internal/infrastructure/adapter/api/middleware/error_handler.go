package middleware

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and renders errors attached with c.Error
// Handlers only attach the error; the status code and body are decided here
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFrom(c),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFromError(err)
		message := err.Error()

		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", map[string]any{
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"request_id": RequestIDFrom(c),
				"error":      err.Error(),
			})
			message = http.StatusText(status)
		}

		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
	}
}

// StatusFromError maps domain errors to HTTP status codes
func StatusFromError(err error) int {
	switch domainerr.ErrorCode(err) {
	case domainerr.CodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	case domainerr.CodeInvalidRequest,
		domainerr.CodeInvalidAmount,
		domainerr.CodeInvalidUserID,
		domainerr.CodeInvalidTransactionKind,
		domainerr.CodeInvalidReferral,
		domainerr.CodeConstraintViolation:
		return http.StatusBadRequest
	case domainerr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domainerr.CodeUnauthorized:
		return http.StatusForbidden
	case domainerr.CodeUserNotFound, domainerr.CodeUnknownReferrer:
		return http.StatusNotFound
	case domainerr.CodeDuplicate, domainerr.CodeAccrualInProgress:
		return http.StatusConflict
	case domainerr.CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
