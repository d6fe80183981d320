package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// WriteBusiness maps a BusinessError to its HTTP status. Anything that is not
// a BusinessError is surfaced as an unclassified internal error.
func WriteBusiness(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if be.Code == "forbidden" {
		Forbidden(c, be.Code, be.Message)
		return
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, be.Message)
	case KindValidation:
		BadRequest(c, be.Code, be.Message)
	case KindConflict:
		Conflict(c, be.Code, be.Message)
	default:
		Internal(c, be.Code, be.Message)
	}
}
