// response.go - Shared JSON response envelope
// Every endpoint answers {success, message, data?}; errors map their
// kind to the proper status code.

package handlers

import (
	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/apperrors"
)

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), envelope{Success: false, Message: err.Error()})
}

// bindError wraps a gin binding failure as a validation error.
func bindError(err error) error {
	return apperrors.Validation(err.Error())
}
