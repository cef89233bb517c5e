// Package apierrors provides the error envelope shared by all HTTP endpoints.
package apierrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape of every error response.
type Envelope struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Respond writes the error as an envelope with the given status.
func Respond(c *gin.Context, status int, err error) {
	message := ""
	if err != nil {
		message = err.Error()
	}
	c.JSON(status, Envelope{Message: message, StatusCode: status})
}

// AbortForbidden writes a 403 envelope and stops the handler chain.
func AbortForbidden(c *gin.Context, err error) {
	c.Abort()
	Respond(c, http.StatusForbidden, err)
}

// Mapper resolves an error to the HTTP status it should surface as.
type Mapper func(err error) (int, bool)

// MapSentinel builds a Mapper matching a sentinel error via errors.Is.
func MapSentinel(sentinel error, status int) Mapper {
	return func(err error) (int, bool) {
		if errors.Is(err, sentinel) {
			return status, true
		}
		return 0, false
	}
}

// RespondWith tries each mapper in order and falls back to a 500 envelope.
func RespondWith(c *gin.Context, err error, mappers ...Mapper) {
	for _, mapper := range mappers {
		if status, ok := mapper(err); ok {
			Respond(c, status, err)
			return
		}
	}
	Respond(c, http.StatusInternalServerError, err)
}
