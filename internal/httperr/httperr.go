package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

var messages = map[string]string{
	CodeInvalidRange:      "start must be before end.",
	CodeUnknownClient:     "client does not exist.",
	CodeOverlapConflict:   "slot overlaps an existing reservation.",
	CodeNotFound:          "resource not found.",
	CodeAlreadyCancelled:  "reservation is already cancelled.",
	CodeDuplicateEmail:    "email is already registered.",
	CodeUnavailable:       "storage unavailable, try again.",
	CodeInvalidRequest:    "invalid request.",
	CodeRequestInProgress: "a request with this idempotency key is in progress.",
	CodeInternal:          "internal error.",
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

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// StatusFor maps a business code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case CodeInvalidRange, CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeNotFound, CodeUnknownClient:
		return http.StatusNotFound
	case CodeOverlapConflict, CodeAlreadyCancelled, CodeDuplicateEmail, CodeRequestInProgress:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err using its business code. Causes are never exposed.
func FromError(c *gin.Context, err error) {
	code := CodeOf(err)
	Write(c, StatusFor(code), code, Message(code))
}

func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return messages[CodeInternal]
}
