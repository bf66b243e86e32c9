package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koungkub/appointment-notification-service/internal/service"
)

type ErrorHandler struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

func (e *ErrorHandler) Error() string {
	return fmt.Sprintf("error code: %s, message: %s", e.ErrorCode, e.Message)
}

func GetRequestError(err error) error {
	return &ErrorHandler{
		ErrorCode: "E101",
		Message:   err.Error(),
	}
}

func GetInternalError(err error) error {
	return &ErrorHandler{
		ErrorCode: "E102",
		Message:   err.Error(),
	}
}

func GetNotFoundError(err error) error {
	return &ErrorHandler{
		ErrorCode: "E103",
		Message:   err.Error(),
	}
}

// abortWithServiceError maps service errors onto the error envelope.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, GetRequestError(err))
	case errors.Is(err, service.ErrNoDeviceTokens), errors.Is(err, service.ErrTokenNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, GetNotFoundError(err))
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, GetInternalError(err))
	}
}
