package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the platform's {success, message, data} body.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a success=false envelope and stops the handler chain.
func Fail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{Message: message})
}

func BadRequest(c *gin.Context, message string)   { Fail(c, http.StatusBadRequest, message) }
func Unauthorized(c *gin.Context, message string) { Fail(c, http.StatusUnauthorized, message) }
func Forbidden(c *gin.Context, message string)    { Fail(c, http.StatusForbidden, message) }
func NotFound(c *gin.Context, message string)     { Fail(c, http.StatusNotFound, message) }

func InternalServerError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
